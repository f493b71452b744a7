package fragment

import (
	"fmt"
	"slices"

	"github.com/orbtools/orbkit/kfstore"
	"github.com/orbtools/orbkit/orbital"
)

// Recognized orbital-energy keys, in fallback preference order. The
// site-energy record only exists when the producing calculation requested
// it; the scaled energies only when relativistic corrections were applied.
const (
	EnergyKeySiteEnergies = "site-energies"
	EnergyKeyEscale       = "escale"
	EnergyKeyEnergy       = "energy"
)

// AssembleOptions configures one Assemble run. The zero value means a
// restricted, symmetry-less calculation with automatic energy-key
// selection; callers normally fill all three fields from the calculation
// metadata and their settings.
type AssembleOptions struct {
	// Restricted selects the single-channel data shape.
	Restricted bool

	// UsesSymmetry mirrors the complex calculation's symmetry flag.
	UsesSymmetry bool

	// EnergyKey overrides the stored energy variable. Empty or unavailable
	// keys fall back in the order site-energies → escale → energy.
	EnergyKey string
}

// Assemble reads, remaps and slices the flat property records of one
// fragment into an immutable Data value. Energies and occupations come
// from pre-filtered active-orbital records and only need a stable
// partition by irrep; the gross-population record still interleaves
// frozen-core blocks and both fragments and is walked irrep by irrep.
func Assemble(store kfstore.Store, fragIndex int, opts AssembleOptions) (*Data, error) {
	meta, err := readSFOMetadata(store)
	if err != nil {
		return nil, err
	}

	rows := meta.rows(fragIndex)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: fragment %d has no active orbitals", ErrIndexMapping, fragIndex)
	}

	name, err := fragmentName(store, rows)
	if err != nil {
		return nil, err
	}
	cores, err := frozenCores(store, meta, fragIndex, opts.UsesSymmetry)
	if err != nil {
		return nil, err
	}

	spins := []orbital.Spin{orbital.SpinA}
	if !opts.Restricted {
		spins = append(spins, orbital.SpinB)
	}

	energyVar := energyVariable(store, opts.EnergyKey)
	channels := make(map[orbital.Spin]*Channel, len(spins))
	for _, spin := range spins {
		energies, err := readPropertyRows(store, energyVar, spin, meta, rows)
		if err != nil {
			return nil, err
		}
		occupations, err := readPropertyRows(store, kfstore.VarOccupation, spin, meta, rows)
		if err != nil {
			return nil, err
		}
		gross, err := grossPopulations(store, meta, fragIndex, cores, spin, opts)
		if err != nil {
			return nil, err
		}

		channels[spin] = &Channel{
			Energies:         energies,
			Occupations:      occupations,
			GrossPopulations: gross,
		}
	}

	return &Data{
		Name:         name,
		Index:        fragIndex,
		Restricted:   opts.Restricted,
		UsesSymmetry: opts.UsesSymmetry,
		Irreps:       meta.orderedIrreps(fragIndex),
		FrozenCores:  cores,
		Channels:     channels,
	}, nil
}

// energyVariable resolves the stored energy variable name. An explicit key
// wins when its record exists; otherwise the fallback chain applies.
func energyVariable(store kfstore.Store, key string) string {
	switch key {
	case EnergyKeySiteEnergies:
		if store.Contains(kfstore.SecSFOs, kfstore.VarSiteEnergy) {
			return kfstore.VarSiteEnergy
		}
	case EnergyKeyEscale:
		if store.Contains(kfstore.SecSFOs, kfstore.VarEscale) {
			return kfstore.VarEscale
		}
	case EnergyKeyEnergy:
		return kfstore.VarEnergy
	}

	if store.Contains(kfstore.SecSFOs, kfstore.VarSiteEnergy) {
		return kfstore.VarSiteEnergy
	}
	if store.Contains(kfstore.SecSFOs, kfstore.VarEscale) {
		return kfstore.VarEscale
	}

	return kfstore.VarEnergy
}

// readPropertyRows reads one flat active-orbital property record, selects
// this fragment's rows, and stable-partitions them by irrep in storage
// order. Spin A reads the bare variable; spin B its "_B" twin when stored,
// falling back to the bare record otherwise (the producer writes no twin
// when both channels coincide).
func readPropertyRows(store kfstore.Store, variable string, spin orbital.Spin, meta *sfoMetadata, rows []int) (map[string][]float64, error) {
	if spin == orbital.SpinB && store.Contains(kfstore.SecSFOs, variable+kfstore.SpinBSuffix) {
		variable += kfstore.SpinBSuffix
	}

	flat, err := store.ReadFloats(kfstore.SecSFOs, variable)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]float64)
	for _, row := range rows {
		if row >= len(flat) {
			return nil, fmt.Errorf("%w: SFO row %d beyond %s record of %d entries",
				ErrIndexMapping, row, variable, len(flat))
		}
		irrep := meta.irreps[row]
		out[irrep] = append(out[irrep], flat[row])
	}

	return out, nil
}

// grossPopulations slices this fragment's share out of the raw
// gross-population record. Unlike the other property records it is not
// pre-filtered: per irrep, in canonical order, the record holds
// [frozen cores | fragment-1 active | fragment-2 active], and unrestricted
// files repeat the whole layout for spin B.
func grossPopulations(store kfstore.Store, meta *sfoMetadata, fragIndex int, cores FrozenCoreTable, spin orbital.Spin, opts AssembleOptions) (map[string][]float64, error) {
	raw, err := store.ReadFloats(kfstore.SecSFOPopul, kfstore.VarGrossPop)
	if err != nil {
		return nil, err
	}

	counts1 := meta.countByIrrep(1)
	counts2 := meta.countByIrrep(2)
	ordered := meta.orderedIrreps(fragIndex)

	// The synthetic entry of a symmetry-less table already holds the summed
	// core count; summing the whole table would double-count it.
	coreTotal := cores[SyntheticIrrep]
	if opts.UsesSymmetry {
		coreTotal = 0
		for _, n := range cores {
			coreTotal += n
		}
	}

	// Degenerate single-block layout: no symmetry anywhere, offsets follow
	// directly from the totals. Must agree with the general walk below for
	// any single-irrep input.
	if !opts.UsesSymmetry && len(ordered) == 1 {
		return grossPopulationsNoSym(raw, fragIndex, coreTotal, counts1, counts2, spin)
	}

	spinOffset := 0
	if spin == orbital.SpinB {
		spinOffset = len(meta.fragments) + coreTotal
	}

	out := make(map[string][]float64, len(ordered))
	offset := spinOffset
	for _, irrep := range ordered {
		frozen := cores[irrep]
		n1, n2 := counts1[irrep], counts2[irrep]

		start := offset + frozen
		take := n1
		if fragIndex == 2 {
			start += n1
			take = n2
		}
		if start+take > len(raw) {
			return nil, fmt.Errorf("%w: gross-population block for %s ends at %d, record has %d entries",
				ErrIndexMapping, irrep, start+take, len(raw))
		}

		out[irrep] = slices.Clone(raw[start : start+take])
		// Advance past the full block regardless of which fragment is being
		// assembled so fragment 1 and fragment 2 walks stay consistent.
		offset += frozen + n1 + n2
	}

	return out, nil
}

// grossPopulationsNoSym is the single-irrep fast path. Everything lives in
// one [frozen | frag1 | frag2] block per spin.
func grossPopulationsNoSym(raw []float64, fragIndex, coreTotal int, counts1, counts2 map[string]int, spin orbital.Spin) (map[string][]float64, error) {
	var total1, total2 int
	for _, n := range counts1 {
		total1 += n
	}
	for _, n := range counts2 {
		total2 += n
	}

	start := coreTotal
	if spin == orbital.SpinB {
		start += coreTotal + total1 + total2
	}

	take := total1
	if fragIndex == 2 {
		start += total1
		take = total2
	}
	if start+take > len(raw) {
		return nil, fmt.Errorf("%w: gross-population block ends at %d, record has %d entries",
			ErrIndexMapping, start+take, len(raw))
	}

	return map[string][]float64{SyntheticIrrep: slices.Clone(raw[start : start+take])}, nil
}
