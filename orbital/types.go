package orbital

// Spin names one spin channel of an unrestricted calculation. Restricted
// identities leave the spin empty.
type Spin string

// The two spin channels. The KF format stores spin A under the bare
// variable names and spin B under a "_B" twin.
const (
	SpinNone Spin = ""
	SpinA    Spin = "A"
	SpinB    Spin = "B"
)

// EnergyUnit names the unit orbital energies are expressed in.
type EnergyUnit string

// Supported energy units.
const (
	UnitHartree EnergyUnit = "hartree"
	UnitEV      EnergyUnit = "eV"
)

// HartreeToEV converts Hartree to electronvolts (CODATA 2018).
const HartreeToEV = 27.211386245988

// OccupationTolerance is the absolute tolerance below which an occupation
// counts as zero, marking the HOMO/LUMO boundary.
const OccupationTolerance = 1e-6

// Identity names a single orbital. Index is 1-based within the irrep's
// active (frozen-core-excluded) orbitals; Irrep is the symmetry label
// (which may itself contain ':', as in "E1:1", but never '_'); Spin is
// empty for restricted calculations.
type Identity struct {
	Index int
	Irrep string
	Spin  Spin
}

// Resolve implements Ref.
func (id Identity) Resolve() (Identity, error) { return id, nil }

// Ref names one orbital, either as a parsed Identity or as its compact
// label form. API entry points accept a Ref and normalize to Identity
// immediately; everything past the boundary works on the typed value.
type Ref interface {
	Resolve() (Identity, error)
}

// Label is the compact text form of an orbital identity, usable directly
// as a Ref: analyzer.SFOOverlap(orbital.Label("8_A1"), orbital.Label("14_A1")).
type Label string

// Resolve implements Ref by parsing the label.
func (l Label) Resolve() (Identity, error) { return ParseLabel(string(l)) }
