package fragment

import (
	"github.com/orbtools/orbkit/kfstore"
	"github.com/orbtools/orbkit/orbital"
)

// Fragment is a read-only facade over one fragment's assembled Data.
type Fragment struct {
	data *Data
}

// New wraps assembled data in a Fragment.
func New(data *Data) *Fragment { return &Fragment{data: data} }

// Create assembles fragIndex's data from the store and wraps it.
func Create(store kfstore.Store, fragIndex int, opts AssembleOptions) (*Fragment, error) {
	data, err := Assemble(store, fragIndex, opts)
	if err != nil {
		return nil, err
	}

	return New(data), nil
}

// Name returns the fragment type name.
func (f *Fragment) Name() string { return f.data.Name }

// Data exposes the underlying immutable data model.
func (f *Fragment) Data() *Data { return f.data }

// OrbitalEnergy returns the orbital energy of id, in the unit the selected
// energy record is stored in.
func (f *Fragment) OrbitalEnergy(id orbital.Identity) (float64, error) {
	ch, err := f.data.Channel(id.Spin)
	if err != nil {
		return 0, err
	}

	return lookup(ch.Energies, id)
}

// Occupation returns the occupation of id.
func (f *Fragment) Occupation(id orbital.Identity) (float64, error) {
	ch, err := f.data.Channel(id.Spin)
	if err != nil {
		return 0, err
	}

	return lookup(ch.Occupations, id)
}

// GrossPopulation returns the gross population of id. When the complex
// carries no symmetry the population record may be keyed by the synthetic
// "A" irrep while identities still carry the fragment's own labels; the
// lookup falls back to the synthetic key in that case.
func (f *Fragment) GrossPopulation(id orbital.Identity) (float64, error) {
	ch, err := f.data.Channel(id.Spin)
	if err != nil {
		return 0, err
	}

	if !f.data.UsesSymmetry {
		if _, ok := ch.GrossPopulations[id.Irrep]; !ok {
			id.Irrep = SyntheticIrrep
		}
	}

	return lookup(ch.GrossPopulations, id)
}
