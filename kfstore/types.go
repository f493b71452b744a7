package kfstore

// Store is the read-only view of one opened KF file. All reads address a
// (section, variable) pair; a missing pair yields ErrNotFound and a pair of
// the wrong kind yields ErrType. Implementations must never mutate after
// open and must be safe for concurrent readers.
type Store interface {
	// ReadInt returns a scalar integer variable.
	ReadInt(section, variable string) (int, error)

	// ReadInts returns a flat integer sequence variable.
	ReadInts(section, variable string) ([]int, error)

	// ReadFloats returns a flat float sequence variable.
	ReadFloats(section, variable string) ([]float64, error)

	// ReadString returns a string variable. Multi-token KF strings (such as
	// the per-orbital symmetry labels) come back whitespace-joined exactly
	// as stored; callers split them.
	ReadString(section, variable string) (string, error)

	// Contains reports whether the (section, variable) pair exists.
	Contains(section, variable string) bool

	// Sections returns the section names present in the file. An empty
	// result marks an empty or unreadable input file.
	Sections() []string
}

// Well-known addresses in ADF fragment-analysis KF files. These are domain
// constants of the third-party format; bit-exact compatibility with the
// producer is required, so they are never synthesized.
const (
	// SecGeneral holds calculation-wide metadata.
	SecGeneral = "General"
	// VarNSpin is the number of spin channels: 1 restricted, 2 unrestricted.
	VarNSpin = "nspin"
	// VarIOPRel is non-zero when relativistic corrections were applied.
	VarIOPRel = "ioprel"
	// VarTitle is the calculation title.
	VarTitle = "title"

	// SecSymmetry holds the complex point-group metadata.
	SecSymmetry = "Symmetry"
	// VarGroupLabel is the point-group label; "nosym" means no symmetry.
	VarGroupLabel = "grouplabel"
	// VarSymLabels lists the complex irrep labels in canonical order.
	VarSymLabels = "symlab"
	// VarCoreOrbitals is the frozen-core orbital count per complex irrep.
	VarCoreOrbitals = "ncbs"

	// SecSFOs holds the active (frozen-core-excluded) fragment orbitals of
	// both fragments combined, as parallel flat arrays in storage order.
	SecSFOs = "SFOs"
	// VarSFOCount is the total number of active SFOs over both fragments.
	VarSFOCount = "number"
	// VarSFOIndex is each SFO's position within its irrep block, the index
	// the packed overlap matrix is built on (before frozen-core shifting).
	VarSFOIndex = "isfo"
	// VarFragment is each SFO's owning fragment (1 or 2).
	VarFragment = "fragment"
	// VarSubspecies is each SFO's irrep label.
	VarSubspecies = "subspecies"
	// VarFragType is each SFO's fragment type name.
	VarFragType = "fragtype"
	// VarOccupation is each SFO's occupation; spin B appends SpinBSuffix.
	VarOccupation = "occupation"
	// VarEnergy is each SFO's orbital energy without relativistic scaling.
	VarEnergy = "energy"
	// VarEscale is each SFO's relativistically scaled orbital energy.
	VarEscale = "escale"
	// VarSiteEnergy is each SFO's site energy, present only when requested
	// in the producing calculation.
	VarSiteEnergy = "site_energy"

	// SecSFOPopul holds the gross-population record, which, unlike SecSFOs,
	// still contains the frozen-core slots.
	SecSFOPopul = "SFO popul"
	// VarGrossPop is the flat gross-population array.
	VarGrossPop = "sfo_grosspop"

	// VarOverlap is the packed lower-triangle SFO overlap matrix, stored
	// once per complex irrep section; spin B appends SpinBSuffix.
	VarOverlap = "S-CoreSFO"

	// SpinBSuffix selects the spin-B twin of a variable. There is no _A
	// twin; spin A always uses the bare variable name.
	SpinBSuffix = "_B"

	// VarMOEnergyScaled and VarMOEnergy are the per-irrep molecular-orbital
	// energies (with and without relativistic scaling); VarMOOccupation the
	// per-irrep MO occupations. All three take a "_A"/"_B" spin suffix.
	VarMOEnergyScaled = "escale"
	VarMOEnergy       = "eps"
	VarMOOccupation   = "froc"
)
