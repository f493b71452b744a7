package orbital_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbtools/orbkit/orbital"
)

func sfo(energy, occupation float64) orbital.SFO {
	return orbital.SFO{Energy: energy, Occupation: occupation}
}

// TestPair_Interaction_Pauli verifies the filled-filled indicator: the
// squared overlap scaled by 100, independent of the energy gap.
func TestPair_Interaction_Pauli(t *testing.T) {
	p := orbital.Pair{SFO1: sfo(-0.5, 2), SFO2: sfo(-0.3, 2), Overlap: -0.2384}

	require.True(t, p.Pauli())
	assert.InDelta(t, 0.2384*0.2384*100, p.Interaction(orbital.UnitHartree), 1e-12)
}

// TestPair_Interaction_BothUnoccupied verifies that an empty-empty pair has
// no physical interaction.
func TestPair_Interaction_BothUnoccupied(t *testing.T) {
	p := orbital.Pair{SFO1: sfo(0.1, 0), SFO2: sfo(0.4, 0), Overlap: 0.9}

	require.False(t, p.Pauli())
	assert.Zero(t, p.Interaction(orbital.UnitHartree))
}

// TestPair_Interaction_OrbitalInteraction verifies the filled-empty
// quotient with the Hartree gap converted to eV before dividing.
func TestPair_Interaction_OrbitalInteraction(t *testing.T) {
	p := orbital.Pair{SFO1: sfo(-0.240836, 2), SFO2: sfo(0.05, 0), Overlap: 0.4084}

	gapEV := (0.05 - -0.240836) * orbital.HartreeToEV
	want := 0.4084 * 0.4084 / gapEV * 100
	assert.InDelta(t, want, p.Interaction(orbital.UnitHartree), 1e-12)
}

// TestPair_Interaction_EVEnergies verifies that energies already stored in
// eV are not converted a second time.
func TestPair_Interaction_EVEnergies(t *testing.T) {
	p := orbital.Pair{SFO1: sfo(-6.553, 2), SFO2: sfo(1.361, 0), Overlap: 0.4084}

	want := 0.4084 * 0.4084 / (1.361 - -6.553) * 100
	assert.InDelta(t, want, p.Interaction(orbital.UnitEV), 1e-12)
}

// TestPair_Interaction_DegenerateGap verifies the sign-carrying fallback
// when the filled-empty gap is numerically zero.
func TestPair_Interaction_DegenerateGap(t *testing.T) {
	p := orbital.Pair{SFO1: sfo(-0.25, 2), SFO2: sfo(-0.25, 0), Overlap: -0.17}

	assert.InDelta(t, -17.0, p.Interaction(orbital.UnitHartree), 1e-12)
}

// TestSFO_FrontierLabel verifies the display ranks around the boundary.
func TestSFO_FrontierLabel(t *testing.T) {
	cases := []struct {
		name       string
		occupation float64
		frontier   int
		want       string
	}{
		{"HOMO", 2, 0, "HOMO"},
		{"HOMO-3", 2, 3, "HOMO-3"},
		{"SOMO", 1, 0, "SOMO"},
		{"SOMO-1", 1, 1, "SOMO-1"},
		{"LUMO", 0, 0, "LUMO"},
		{"LUMO+2", 0, 2, "LUMO+2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := orbital.SFO{Occupation: tc.occupation, FrontierIndex: tc.frontier}
			assert.Equal(t, tc.want, s.FrontierLabel())
		})
	}
}

// TestSFO_Occupied verifies the boundary tolerance.
func TestSFO_Occupied(t *testing.T) {
	assert.True(t, sfo(0, 2).Occupied())
	assert.True(t, sfo(0, 1e-5).Occupied())
	assert.False(t, sfo(0, 1e-7).Occupied())
	assert.False(t, sfo(0, 0).Occupied())
}
