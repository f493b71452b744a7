package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbtools/orbkit/fragment"
	"github.com/orbtools/orbkit/kfstore"
	"github.com/orbtools/orbkit/orbital"
)

// withMOs adds per-irrep molecular-orbital records to a fixture store.
func withMOs(m *kfstore.MemStore) *kfstore.MemStore {
	m.SetFloats("A1", "eps_A", []float64{-1.2, -0.6, 0.2})
	m.SetFloats("A1", "froc_A", []float64{2, 2, 0})
	m.SetFloats("E1", "eps_A", []float64{-0.45, 0.3})
	m.SetFloats("E1", "froc_A", []float64{2, 0})

	return m
}

// TestAssembleComplex_Restricted verifies the per-irrep MO read of a
// restricted file and the facade lookups over it.
func TestAssembleComplex_Restricted(t *testing.T) {
	store := withMOs(symStore())

	cplx, err := fragment.CreateComplex(store, "AsH3 + GaCl3", true)
	require.NoError(t, err)
	assert.Equal(t, "AsH3 + GaCl3", cplx.Name())
	assert.Equal(t, []string{"A1", "E1"}, cplx.Data().Irreps)

	e, err := cplx.OrbitalEnergy(orbital.Identity{Index: 2, Irrep: "A1"})
	require.NoError(t, err)
	assert.InDelta(t, -0.6, e, 1e-12)

	occ, err := cplx.Occupation(orbital.Identity{Index: 2, Irrep: "E1"})
	require.NoError(t, err)
	assert.Zero(t, occ)

	_, err = cplx.OrbitalEnergy(orbital.Identity{Index: 4, Irrep: "A1"})
	require.ErrorIs(t, err, fragment.ErrOrbitalOutOfRange)
}

// TestAssembleComplex_ScaledEnergiesPreferred verifies the escale → eps
// preference per irrep.
func TestAssembleComplex_ScaledEnergiesPreferred(t *testing.T) {
	store := withMOs(symStore())
	store.SetFloats("A1", "escale_A", []float64{-1.3, -0.7, 0.1})

	cplx, err := fragment.CreateComplex(store, "", true)
	require.NoError(t, err)

	e, err := cplx.OrbitalEnergy(orbital.Identity{Index: 1, Irrep: "A1"})
	require.NoError(t, err)
	assert.InDelta(t, -1.3, e, 1e-12)

	// E1 carries no scaled record and keeps the bare eigenvalues.
	e, err = cplx.OrbitalEnergy(orbital.Identity{Index: 1, Irrep: "E1"})
	require.NoError(t, err)
	assert.InDelta(t, -0.45, e, 1e-12)
}

// TestAssembleComplex_Unrestricted verifies the spin-B channel read and the
// spin defaulting of lookups.
func TestAssembleComplex_Unrestricted(t *testing.T) {
	store := nosymStore()
	store.SetFloats("A", "eps_A", []float64{-0.9, -0.2, 0.3})
	store.SetFloats("A", "froc_A", []float64{1, 1, 0})
	store.SetFloats("A", "eps_B", []float64{-0.85, -0.15, 0.35})
	store.SetFloats("A", "froc_B", []float64{1, 0, 0})

	cplx, err := fragment.CreateComplex(store, "", false)
	require.NoError(t, err)

	e, err := cplx.OrbitalEnergy(orbital.Identity{Index: 2, Irrep: "A", Spin: orbital.SpinB})
	require.NoError(t, err)
	assert.InDelta(t, -0.15, e, 1e-12)

	// No spin defaults to channel A.
	e, err = cplx.OrbitalEnergy(orbital.Identity{Index: 2, Irrep: "A"})
	require.NoError(t, err)
	assert.InDelta(t, -0.2, e, 1e-12)

	occ, err := cplx.Occupation(orbital.Identity{Index: 2, Irrep: "A", Spin: orbital.SpinB})
	require.NoError(t, err)
	assert.Zero(t, occ)
}
