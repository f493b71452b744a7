package fragment

import (
	"fmt"

	"github.com/orbtools/orbkit/orbital"
)

// Channel holds the per-irrep property arrays of one spin channel. Within
// each array, ordering follows raw storage order, which tends to be
// energy-ascending by convention but is not guaranteed to be; lookups go
// by (irrep, 1-based index), never by position search.
type Channel struct {
	Energies         map[string][]float64
	Occupations      map[string][]float64
	GrossPopulations map[string][]float64
}

// Data is the immutable per-fragment data model. Restricted calculations
// hold a single SpinA channel; unrestricted ones hold SpinA and SpinB.
type Data struct {
	Name         string
	Index        int
	Restricted   bool
	UsesSymmetry bool
	Irreps       []string // active irreps, first-occurrence storage order
	FrozenCores  FrozenCoreTable
	Channels     map[orbital.Spin]*Channel
}

// Channel selects the spin channel for a lookup. Restricted data ignores
// the requested spin; unrestricted data treats an unspecified spin as A.
func (d *Data) Channel(spin orbital.Spin) (*Channel, error) {
	if d.Restricted {
		return d.Channels[orbital.SpinA], nil
	}

	ch, ok := d.Channels[normalizeSpin(spin)]
	if !ok {
		return nil, fmt.Errorf("%w: no spin %s channel", ErrUnknownIrrep, normalizeSpin(spin))
	}

	return ch, nil
}

// lookup resolves a 1-based (irrep, index) pair in one property map.
func lookup(property map[string][]float64, id orbital.Identity) (float64, error) {
	arr, ok := property[id.Irrep]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownIrrep, id.Irrep)
	}
	if id.Index < 1 || id.Index > len(arr) {
		return 0, fmt.Errorf("%w: %s (irrep holds %d orbitals)", ErrOrbitalOutOfRange, id.Label(), len(arr))
	}

	return arr[id.Index-1], nil
}
