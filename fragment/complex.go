package fragment

import (
	"fmt"
	"strings"

	"github.com/orbtools/orbkit/kfstore"
	"github.com/orbtools/orbkit/orbital"
)

// MOChannel holds the complex's per-irrep molecular-orbital arrays of one
// spin channel.
type MOChannel struct {
	Energies    map[string][]float64
	Occupations map[string][]float64
}

// ComplexData is the immutable complex-side counterpart of Data: the
// molecular orbitals of the combined system, keyed by the complex irreps
// from ("Symmetry", "symlab"). MO records live in one KF section per
// irrep, so no fragment filtering or frozen-core walking applies here.
type ComplexData struct {
	Name       string
	Restricted bool
	Irreps     []string
	Channels   map[orbital.Spin]*MOChannel
}

// AssembleComplex reads the complex's molecular-orbital data. Scaled
// energies ("escale") are preferred per irrep, falling back to the bare
// eigenvalues ("eps") for non-relativistic files.
func AssembleComplex(store kfstore.Store, name string, restricted bool) (*ComplexData, error) {
	symlab, err := store.ReadString(kfstore.SecSymmetry, kfstore.VarSymLabels)
	if err != nil {
		return nil, err
	}
	irreps := strings.Fields(symlab)
	if len(irreps) == 0 {
		return nil, fmt.Errorf("%w: empty symlab record", ErrIndexMapping)
	}

	spins := []orbital.Spin{orbital.SpinA}
	if !restricted {
		spins = append(spins, orbital.SpinB)
	}

	channels := make(map[orbital.Spin]*MOChannel, len(spins))
	for _, spin := range spins {
		ch := &MOChannel{
			Energies:    make(map[string][]float64, len(irreps)),
			Occupations: make(map[string][]float64, len(irreps)),
		}
		for _, irrep := range irreps {
			energies, err := readMOEnergies(store, irrep, spin)
			if err != nil {
				return nil, err
			}
			occupations, err := store.ReadFloats(irrep, suffixed(kfstore.VarMOOccupation, spin))
			if err != nil {
				return nil, err
			}

			ch.Energies[irrep] = energies
			ch.Occupations[irrep] = occupations
		}
		channels[spin] = ch
	}

	return &ComplexData{
		Name:       name,
		Restricted: restricted,
		Irreps:     irreps,
		Channels:   channels,
	}, nil
}

func readMOEnergies(store kfstore.Store, irrep string, spin orbital.Spin) ([]float64, error) {
	scaled := suffixed(kfstore.VarMOEnergyScaled, spin)
	if store.Contains(irrep, scaled) {
		return store.ReadFloats(irrep, scaled)
	}

	return store.ReadFloats(irrep, suffixed(kfstore.VarMOEnergy, spin))
}

// suffixed appends the spin channel to an MO variable name. Unlike the SFO
// records, the MO records carry an explicit "_A" twin as well.
func suffixed(variable string, spin orbital.Spin) string {
	return variable + "_" + string(normalizeSpin(spin))
}

// Complex is a read-only facade over the complex's molecular-orbital data.
type Complex struct {
	data *ComplexData
}

// NewComplex wraps assembled complex data.
func NewComplex(data *ComplexData) *Complex { return &Complex{data: data} }

// CreateComplex assembles and wraps the complex data in one step.
func CreateComplex(store kfstore.Store, name string, restricted bool) (*Complex, error) {
	data, err := AssembleComplex(store, name, restricted)
	if err != nil {
		return nil, err
	}

	return NewComplex(data), nil
}

// Name returns the complex calculation's name.
func (c *Complex) Name() string { return c.data.Name }

// Data exposes the underlying immutable data model.
func (c *Complex) Data() *ComplexData { return c.data }

// OrbitalEnergy returns the molecular-orbital energy of id.
func (c *Complex) OrbitalEnergy(id orbital.Identity) (float64, error) {
	ch, err := c.channel(id.Spin)
	if err != nil {
		return 0, err
	}

	return lookup(ch.Energies, id)
}

// Occupation returns the molecular-orbital occupation of id.
func (c *Complex) Occupation(id orbital.Identity) (float64, error) {
	ch, err := c.channel(id.Spin)
	if err != nil {
		return 0, err
	}

	return lookup(ch.Occupations, id)
}

func (c *Complex) channel(spin orbital.Spin) (*MOChannel, error) {
	if c.data.Restricted {
		return c.data.Channels[orbital.SpinA], nil
	}

	ch, ok := c.data.Channels[normalizeSpin(spin)]
	if !ok {
		return nil, fmt.Errorf("%w: no spin %s channel", ErrUnknownIrrep, normalizeSpin(spin))
	}

	return ch, nil
}
