package orbital

import "math"

// Pair couples one fragment-1 and one fragment-2 orbital with their scalar
// overlap. Pairs are constructed on demand by ranking queries and never
// persisted.
type Pair struct {
	SFO1    SFO
	SFO2    SFO
	Overlap float64
}

// Pauli reports whether both orbitals are occupied, making the pair a
// Pauli-repulsion (filled-filled) pair.
func (p Pair) Pauli() bool { return p.SFO1.Occupied() && p.SFO2.Occupied() }

// EnergyGap is the absolute orbital-energy difference in the unit the
// energies were stored in.
func (p Pair) EnergyGap() float64 { return math.Abs(p.SFO1.Energy - p.SFO2.Energy) }

// Interaction computes the interaction indicator for the pair:
//
//   - both occupied: Pauli repulsion, overlap² × 100 (a.u.²);
//   - both unoccupied: 0, the interaction is non-physical;
//   - one occupied: orbital-interaction stabilization,
//     overlap² / Δε(eV) × 100, or the sign-carrying overlap × 100 when the
//     pair is degenerate and the quotient form is singular.
//
// unit names the unit the orbital energies are stored in; a Hartree gap is
// converted to eV before the division, never after.
func (p Pair) Interaction(unit EnergyUnit) float64 {
	occ1, occ2 := p.SFO1.Occupied(), p.SFO2.Occupied()

	if !occ1 && !occ2 {
		return 0
	}
	if occ1 && occ2 {
		return p.Overlap * p.Overlap * 100
	}

	gap := p.EnergyGap()
	if unit == UnitHartree {
		gap *= HartreeToEV
	}
	if gap <= degenerateGapTolerance {
		return p.Overlap * 100
	}

	return p.Overlap * p.Overlap / gap * 100
}

// degenerateGapTolerance marks an energy gap (in eV) as numerically zero.
const degenerateGapTolerance = 1e-8
