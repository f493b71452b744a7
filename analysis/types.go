package analysis

import (
	"github.com/orbtools/orbkit/fragment"
	"github.com/orbtools/orbkit/orbital"
)

// Settings are the read-only knobs of the energy-reading step. They are
// threaded explicitly through construction; the core never consults any
// process-wide configuration.
type Settings struct {
	// EnergyKey selects the stored orbital-energy variable: one of
	// "site-energies", "escale", "energy". Empty or unavailable keys fall
	// back in that order.
	EnergyKey string

	// EnergyUnit names the unit the stored energies are expressed in and
	// controls the energy-gap unit of the interaction indicators. Defaults
	// to Hartree, the KF native unit.
	EnergyUnit orbital.EnergyUnit
}

func (s Settings) withDefaults() Settings {
	if s.EnergyUnit == "" {
		s.EnergyUnit = orbital.UnitHartree
	}

	return s
}

// OrbitalRange bounds one side pair of an orbital window: Below occupied
// orbitals under the HOMO and Above unoccupied ones over the LUMO. (0, 0)
// selects exactly the HOMO and the LUMO.
type OrbitalRange struct {
	Below int
	Above int
}

// WindowOptions configures SFO window selection for both fragments.
type WindowOptions struct {
	Frag1Range OrbitalRange
	Frag2Range OrbitalRange

	// Irreps restricts the selection to the listed irreps; nil allows all.
	Irreps []string

	// Spin selects the channel for unrestricted calculations; empty means
	// spin A. Ignored for restricted calculations.
	Spin orbital.Spin
}

// MOWindowOptions configures molecular-orbital window selection.
type MOWindowOptions struct {
	Range  OrbitalRange
	Irreps []string
	Spin   orbital.Spin
}

// Analyzer is the capability interface shared by the restricted and
// unrestricted variants. Accessors taking an orbital.Ref accept either a
// parsed orbital.Identity or an orbital.Label string form and normalize at
// the boundary.
type Analyzer interface {
	// Name returns the calculation name.
	Name() string
	// Restricted reports a single-spin-channel calculation.
	Restricted() bool
	// UsesSymmetry reports whether the complex carries point-group symmetry.
	UsesSymmetry() bool
	// Relativistic reports whether relativistic corrections were applied.
	Relativistic() bool

	// Fragment returns fragment 1 or 2.
	Fragment(number int) (*fragment.Fragment, error)
	// Complex returns the combined-system facade.
	Complex() *fragment.Complex

	// SFOOverlap returns the signed overlap between one fragment-1 and one
	// fragment-2 orbital in a.u. Cross-spin pairs are exactly 0.0.
	SFOOverlap(sfo1, sfo2 orbital.Ref) (float64, error)
	// SFOOverlapAbs returns the overlap magnitude.
	SFOOverlapAbs(sfo1, sfo2 orbital.Ref) (float64, error)
	// SFOOrbitalEnergy returns an orbital energy of the given fragment.
	SFOOrbitalEnergy(fragNumber int, sfo orbital.Ref) (float64, error)
	// SFOOccupation returns an orbital occupation of the given fragment.
	SFOOccupation(fragNumber int, sfo orbital.Ref) (float64, error)
	// SFOGrossPopulation returns a gross population of the given fragment.
	SFOGrossPopulation(fragNumber int, sfo orbital.Ref) (float64, error)

	// SFOOrbitals selects an orbital window per fragment and materializes
	// the manager with its overlap and interaction matrices.
	SFOOrbitals(opts WindowOptions) (*SFOManager, error)
	// MOOrbitals selects a molecular-orbital window of the complex.
	MOOrbitals(opts MOWindowOptions) (*MOManager, error)
}
