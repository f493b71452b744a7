package fragment

import (
	"fmt"

	"github.com/orbtools/orbkit/kfstore"
	"github.com/orbtools/orbkit/orbital"
)

// OverlapIndexMap translates the active per-irrep orbital numbering into
// the global numbering the packed overlap matrix is stored under:
// fragment → irrep → ordered global indices, one per active orbital. The
// global index differs from the active index because the overlap matrix,
// unlike the energy and occupation records, still counts each irrep's
// frozen-core block.
type OverlapIndexMap map[int]map[string][]int

// BuildOverlapIndexMap walks the parallel (isfo, fragment, irrep) triples
// in storage order and offsets every orbital's within-irrep position by
// the irrep's frozen-core count. When the complex has no symmetry every
// orbital lands in the synthetic "A" irrep instead.
func BuildOverlapIndexMap(store kfstore.Store, cores FrozenCoreTable, usesSymmetry bool) (OverlapIndexMap, error) {
	meta, err := readSFOMetadata(store)
	if err != nil {
		return nil, err
	}
	isfo, err := store.ReadInts(kfstore.SecSFOs, kfstore.VarSFOIndex)
	if err != nil {
		return nil, err
	}
	if len(isfo) != len(meta.fragments) {
		return nil, fmt.Errorf("%w: %d isfo entries vs %d fragment entries",
			ErrIndexMapping, len(isfo), len(meta.fragments))
	}

	mapping := make(OverlapIndexMap, 2)
	for i, local := range isfo {
		irrep := meta.irreps[i]
		if !usesSymmetry {
			irrep = SyntheticIrrep
		}

		global := local + cores[irrep]
		if global < 1 {
			return nil, fmt.Errorf("%w: orbital %d of irrep %s maps to global index %d",
				ErrIndexMapping, local, irrep, global)
		}

		frag := meta.fragments[i]
		if mapping[frag] == nil {
			mapping[frag] = make(map[string][]int)
		}
		mapping[frag][irrep] = append(mapping[frag][irrep], global)
	}

	return mapping, nil
}

// GlobalIndex resolves one active (fragment, irrep, 1-based index) triple
// to its global overlap-matrix index.
func (m OverlapIndexMap) GlobalIndex(fragIndex int, irrep string, index int) (int, error) {
	byIrrep, ok := m[fragIndex]
	if !ok {
		return 0, fmt.Errorf("%w: no orbitals mapped for fragment %d", ErrIndexMapping, fragIndex)
	}
	globals, ok := byIrrep[irrep]
	if !ok {
		return 0, fmt.Errorf("%w: %s (fragment %d)", ErrUnknownIrrep, irrep, fragIndex)
	}
	if index < 1 || index > len(globals) {
		return 0, fmt.Errorf("%w: %d_%s of fragment %d (irrep holds %d orbitals)",
			ErrOrbitalOutOfRange, index, irrep, fragIndex, len(globals))
	}

	return globals[index-1], nil
}

// packedOffset computes the 0-based offset of element (g1, g2) in a packed
// lower-triangular matrix. Symmetric in its arguments by construction.
func packedOffset(g1, g2 int) int {
	lo, hi := g1, g2
	if lo > hi {
		lo, hi = hi, lo
	}

	return hi*(hi-1)/2 + lo - 1
}

// OverlapResolver answers cross-fragment overlap queries against the
// packed per-irrep overlap records. The first identity always addresses
// fragment 1, the second fragment 2.
type OverlapResolver struct {
	store        kfstore.Store
	mapping      OverlapIndexMap
	usesSymmetry bool
	restricted   bool
}

// NewOverlapResolver builds the index mapping once and reuses it for every
// query. The store is borrowed read-only for the resolver's lifetime.
func NewOverlapResolver(store kfstore.Store, cores FrozenCoreTable, usesSymmetry, restricted bool) (*OverlapResolver, error) {
	mapping, err := BuildOverlapIndexMap(store, cores, usesSymmetry)
	if err != nil {
		return nil, err
	}

	return &OverlapResolver{
		store:        store,
		mapping:      mapping,
		usesSymmetry: usesSymmetry,
		restricted:   restricted,
	}, nil
}

// Overlap returns the signed overlap between id1 (fragment 1) and id2
// (fragment 2) in a.u. Differing spins of an unrestricted calculation
// return exactly 0.0 without touching storage, as do symmetry-forbidden
// pairs of different irreps; neither overlap is ever stored.
func (r *OverlapResolver) Overlap(id1, id2 orbital.Identity) (float64, error) {
	if !r.restricted && normalizeSpin(id1.Spin) != normalizeSpin(id2.Spin) {
		return 0, nil
	}

	irrep1, irrep2 := id1.Irrep, id2.Irrep
	if !r.usesSymmetry {
		irrep1, irrep2 = SyntheticIrrep, SyntheticIrrep
	}
	if irrep1 != irrep2 {
		return 0, nil
	}

	g1, err := r.mapping.GlobalIndex(1, irrep1, id1.Index)
	if err != nil {
		return 0, err
	}
	g2, err := r.mapping.GlobalIndex(2, irrep2, id2.Index)
	if err != nil {
		return 0, err
	}

	variable := kfstore.VarOverlap
	if !r.restricted && normalizeSpin(id1.Spin) == orbital.SpinB &&
		r.store.Contains(irrep1, variable+kfstore.SpinBSuffix) {
		variable += kfstore.SpinBSuffix
	}

	triangle, err := r.store.ReadFloats(irrep1, variable)
	if err != nil {
		return 0, err
	}

	offset := packedOffset(g1, g2)
	if offset < 0 || offset >= len(triangle) {
		return 0, fmt.Errorf("%w: packed offset %d beyond %s overlap block of %d entries",
			ErrIndexMapping, offset, irrep1, len(triangle))
	}

	return triangle[offset], nil
}

// OverlapAbs returns the magnitude of Overlap. The sign of a stored
// overlap is basis-convention noise for the magnitude-based interaction
// metrics; callers needing the signed value use Overlap.
func (r *OverlapResolver) OverlapAbs(id1, id2 orbital.Identity) (float64, error) {
	v, err := r.Overlap(id1, id2)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return -v, nil
	}

	return v, nil
}

func normalizeSpin(s orbital.Spin) orbital.Spin {
	if s == orbital.SpinNone {
		return orbital.SpinA
	}

	return s
}
