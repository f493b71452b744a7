package orbital

import (
	"fmt"
	"math"
)

// SFO is a fully resolved symmetrized fragment orbital: an identity plus
// the per-orbital data read from the calculation. FrontierIndex is the
// distance from the HOMO/LUMO boundary used for display ranks ("HOMO-2",
// "LUMO+1"); StorageIndex is the orbital's position in the raw SFO
// storage order, used only for deterministic tie-breaking.
type SFO struct {
	Identity

	Energy          float64
	Occupation      float64
	GrossPopulation float64
	FrontierIndex   int
	StorageIndex    int
}

// MO is a fully resolved molecular orbital of the complex.
type MO struct {
	Identity

	Energy        float64
	Occupation    float64
	FrontierIndex int
}

// Occupied reports whether the orbital holds any electron density, within
// OccupationTolerance of zero.
func (s SFO) Occupied() bool { return occupied(s.Occupation) }

// SinglyOccupied reports an occupation of exactly one electron.
func (s SFO) SinglyOccupied() bool { return math.Abs(s.Occupation-1) <= OccupationTolerance }

// FrontierLabel renders the display rank, e.g. "HOMO", "HOMO-3", "SOMO",
// "LUMO+1".
func (s SFO) FrontierLabel() string {
	return frontierLabel(s.Occupation, s.FrontierIndex)
}

// Occupied reports whether the orbital holds any electron density, within
// OccupationTolerance of zero.
func (m MO) Occupied() bool { return occupied(m.Occupation) }

// FrontierLabel renders the display rank, e.g. "HOMO", "LUMO+4".
func (m MO) FrontierLabel() string {
	return frontierLabel(m.Occupation, m.FrontierIndex)
}

func occupied(occupation float64) bool { return occupation >= OccupationTolerance }

func frontierLabel(occupation float64, frontierIndex int) string {
	var base string
	switch {
	case !occupied(occupation):
		base = "LUMO"
	case math.Abs(occupation-1) <= OccupationTolerance:
		base = "SOMO"
	default:
		base = "HOMO"
	}

	if frontierIndex == 0 {
		return base
	}
	if base == "LUMO" {
		return fmt.Sprintf("%s+%d", base, frontierIndex)
	}

	return fmt.Sprintf("%s-%d", base, frontierIndex)
}
