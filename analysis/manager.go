package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/orbtools/orbkit/fragment"
	"github.com/orbtools/orbkit/orbital"
)

// SFOManager holds one materialized orbital window: the selected fragment
// orbitals on both sides and the dense inter-fragment overlap matrix.
// Fragment-1 orbitals are ordered energy-descending and fragment-2 orbitals
// energy-ascending, matching the conventional table layout with the
// frontier orbitals meeting in the corner.
type SFOManager struct {
	Frag1Orbitals []orbital.SFO
	Frag2Orbitals []orbital.SFO

	overlap *mat.Dense
	unit    orbital.EnergyUnit
}

// MOManager holds one materialized molecular-orbital window of the complex,
// ordered energy-ascending.
type MOManager struct {
	Orbitals []orbital.MO
}

func newSFOManager(c *calc, opts WindowOptions) (*SFOManager, error) {
	if err := checkRange(opts.Frag1Range); err != nil {
		return nil, err
	}
	if err := checkRange(opts.Frag2Range); err != nil {
		return nil, err
	}

	frag1, err := selectWindow(c.fragments[0], opts.Spin, c.restricted, opts.Frag1Range, opts.Irreps)
	if err != nil {
		return nil, err
	}
	frag2, err := selectWindow(c.fragments[1], opts.Spin, c.restricted, opts.Frag2Range, opts.Irreps)
	if err != nil {
		return nil, err
	}

	// Fragment 1 rows run energy-descending; fragment 2 columns stay
	// energy-ascending.
	reverse(frag1)

	m := &SFOManager{
		Frag1Orbitals: frag1,
		Frag2Orbitals: frag2,
		unit:          c.settings.EnergyUnit,
	}
	if len(frag1) == 0 || len(frag2) == 0 {
		return m, nil
	}

	m.overlap = mat.NewDense(len(frag1), len(frag2), nil)
	for i, s1 := range frag1 {
		for j, s2 := range frag2 {
			// An unoccupied-unoccupied overlap carries no physical
			// interaction; it is pinned to zero without a storage read.
			if !s1.Occupied() && !s2.Occupied() {
				continue
			}
			v, err := c.resolver.Overlap(s1.Identity, s2.Identity)
			if err != nil {
				return nil, err
			}
			m.overlap.Set(i, j, v)
		}
	}

	return m, nil
}

// OverlapMatrix returns the signed overlap matrix, rows indexed by
// Frag1Orbitals and columns by Frag2Orbitals. Nil when either window is
// empty.
func (m *SFOManager) OverlapMatrix() *mat.Dense {
	return m.overlap
}

// InteractionMatrix derives the per-pair interaction indicators from the
// overlap matrix: Pauli repulsion for filled-filled pairs and the
// stabilization quotient for filled-empty ones. Nil when either window is
// empty.
func (m *SFOManager) InteractionMatrix() *mat.Dense {
	if m.overlap == nil {
		return nil
	}

	r, c := m.overlap.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			p := m.pair(i, j)
			out.Set(i, j, p.Interaction(m.unit))
		}
	}

	return out
}

// Pairs lists every pair of the window in row-major storage order.
func (m *SFOManager) Pairs() []orbital.Pair {
	if m.overlap == nil {
		return nil
	}

	r, c := m.overlap.Dims()
	pairs := make([]orbital.Pair, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			pairs = append(pairs, m.pair(i, j))
		}
	}

	return pairs
}

// MostDestabilizingPauliPairs returns the n filled-filled pairs with the
// largest Pauli-repulsion indicator, largest first. Ties keep row-major
// window order. Fewer than n pairs are returned when the window holds
// fewer.
func (m *SFOManager) MostDestabilizingPauliPairs(n int) []orbital.Pair {
	return m.rank(n, func(p orbital.Pair) bool { return p.Pauli() })
}

// MostStabilizingOIPairs returns the n filled-empty pairs with the largest
// orbital-interaction indicator magnitude, largest first. Ties keep
// row-major window order.
func (m *SFOManager) MostStabilizingOIPairs(n int) []orbital.Pair {
	return m.rank(n, func(p orbital.Pair) bool {
		return p.SFO1.Occupied() != p.SFO2.Occupied()
	})
}

func (m *SFOManager) rank(n int, keep func(orbital.Pair) bool) []orbital.Pair {
	if n <= 0 || m.overlap == nil {
		return nil
	}

	var pairs []orbital.Pair
	for _, p := range m.Pairs() {
		if keep(p) {
			pairs = append(pairs, p)
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].Interaction(m.unit)) > math.Abs(pairs[j].Interaction(m.unit))
	})
	if n < len(pairs) {
		pairs = pairs[:n]
	}

	return pairs
}

func (m *SFOManager) pair(i, j int) orbital.Pair {
	return orbital.Pair{
		SFO1:    m.Frag1Orbitals[i],
		SFO2:    m.Frag2Orbitals[j],
		Overlap: m.overlap.At(i, j),
	}
}

func newMOManager(c *calc, opts MOWindowOptions) (*MOManager, error) {
	if err := checkRange(opts.Range); err != nil {
		return nil, err
	}

	mos, err := collectMOs(c.cplx.Data(), opts.Spin, c.restricted)
	if err != nil {
		return nil, err
	}

	selected := window(mos, opts.Range, opts.Irreps,
		func(mo orbital.MO) (float64, float64, string) { return mo.Energy, mo.Occupation, mo.Irrep },
		func(mo *orbital.MO, fi int) { mo.FrontierIndex = fi })

	return &MOManager{Orbitals: selected}, nil
}

// selectWindow carves one fragment's orbital window: all the fragment's
// orbitals are resolved and sorted energy-ascending, the occupied/virtual
// boundary is located, and r.Below+1 occupied plus r.Above+1 unoccupied
// orbitals closest to the boundary are kept. Frontier distances are
// assigned before any irrep filtering so that "HOMO-2" stays "HOMO-2" even
// when its irrep is filtered out of the window.
func selectWindow(frag *fragment.Fragment, spin orbital.Spin, restricted bool,
	r OrbitalRange, irreps []string) ([]orbital.SFO, error) {
	sfos, err := collectSFOs(frag, spin, restricted)
	if err != nil {
		return nil, err
	}

	return window(sfos, r, irreps,
		func(s orbital.SFO) (float64, float64, string) { return s.Energy, s.Occupation, s.Irrep },
		func(s *orbital.SFO, fi int) { s.FrontierIndex = fi }), nil
}

// collectSFOs resolves every active orbital of the fragment into a value
// object, walking the irreps in storage order so StorageIndex is the
// orbital's raw position.
func collectSFOs(frag *fragment.Fragment, spin orbital.Spin, restricted bool) ([]orbital.SFO, error) {
	data := frag.Data()
	ch, err := data.Channel(spin)
	if err != nil {
		return nil, err
	}
	if restricted {
		spin = orbital.SpinNone
	}

	var sfos []orbital.SFO
	storage := 0
	for _, irrep := range data.Irreps {
		energies := ch.Energies[irrep]
		for i := range energies {
			id := orbital.Identity{Index: i + 1, Irrep: irrep, Spin: spin}
			gp, err := frag.GrossPopulation(id)
			if err != nil {
				return nil, err
			}

			sfos = append(sfos, orbital.SFO{
				Identity:        id,
				Energy:          energies[i],
				Occupation:      ch.Occupations[irrep][i],
				GrossPopulation: gp,
				StorageIndex:    storage,
			})
			storage++
		}
	}

	return sfos, nil
}

// collectMOs resolves the complex's molecular orbitals the same way.
func collectMOs(data *fragment.ComplexData, spin orbital.Spin, restricted bool) ([]orbital.MO, error) {
	var idSpin orbital.Spin
	if !restricted {
		idSpin = spin
	}

	ch, ok := data.Channels[orbital.SpinA]
	if !restricted {
		if spin == orbital.SpinNone {
			spin = orbital.SpinA
		}
		ch, ok = data.Channels[spin]
	}
	if !ok {
		return nil, fragment.ErrUnknownIrrep
	}

	var mos []orbital.MO
	for _, irrep := range data.Irreps {
		energies := ch.Energies[irrep]
		for i := range energies {
			mos = append(mos, orbital.MO{
				Identity:   orbital.Identity{Index: i + 1, Irrep: irrep, Spin: idSpin},
				Energy:     energies[i],
				Occupation: ch.Occupations[irrep][i],
			})
		}
	}

	return mos, nil
}

// window is the shared selection core for SFO and MO windows. orbitals must
// already carry stable storage order; sorting is stable so equal energies
// keep it.
func window[T any](orbitals []T, r OrbitalRange, irreps []string,
	key func(T) (energy, occupation float64, irrep string),
	setFrontier func(*T, int)) []T {
	sort.SliceStable(orbitals, func(i, j int) bool {
		ei, _, _ := key(orbitals[i])
		ej, _, _ := key(orbitals[j])

		return ei < ej
	})

	// boundary is the position of the first unoccupied orbital; everything
	// before it is the occupied block.
	boundary := len(orbitals)
	for i := range orbitals {
		if _, occ, _ := key(orbitals[i]); occ < orbital.OccupationTolerance {
			boundary = i
			break
		}
	}
	for i := range orbitals {
		if i < boundary {
			setFrontier(&orbitals[i], boundary-1-i)
		} else {
			setFrontier(&orbitals[i], i-boundary)
		}
	}

	if irreps != nil {
		allowed := make(map[string]bool, len(irreps))
		for _, irrep := range irreps {
			allowed[irrep] = true
		}

		kept := orbitals[:0:0]
		newBoundary := 0
		for i, o := range orbitals {
			_, _, irrep := key(o)
			if !allowed[irrep] {
				continue
			}
			if i < boundary {
				newBoundary++
			}
			kept = append(kept, o)
		}
		orbitals, boundary = kept, newBoundary
	}

	lo := boundary - (r.Below + 1)
	if lo < 0 {
		lo = 0
	}
	hi := boundary + (r.Above + 1)
	if hi > len(orbitals) {
		hi = len(orbitals)
	}

	return orbitals[lo:hi]
}

func checkRange(r OrbitalRange) error {
	if r.Below < 0 || r.Above < 0 {
		return ErrBadWindow
	}

	return nil
}

func reverse(sfos []orbital.SFO) {
	for i, j := 0, len(sfos)-1; i < j; i, j = i+1, j-1 {
		sfos[i], sfos[j] = sfos[j], sfos[i]
	}
}
