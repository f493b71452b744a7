package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbtools/orbkit/fragment"
	"github.com/orbtools/orbkit/kfstore"
	"github.com/orbtools/orbkit/orbital"
)

// TestBuildOverlapIndexMap_FrozenCoreShift verifies the global numbering:
// each active orbital's within-irrep index plus the irrep's frozen-core
// count.
func TestBuildOverlapIndexMap_FrozenCoreShift(t *testing.T) {
	store := symStore()
	cores, err := fragment.FrozenCores(store, 1, true)
	require.NoError(t, err)

	mapping, err := fragment.BuildOverlapIndexMap(store, cores, true)
	require.NoError(t, err)

	g, err := mapping.GlobalIndex(1, "A1", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, g)

	g, err = mapping.GlobalIndex(1, "A1", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, g)

	g, err = mapping.GlobalIndex(2, "A1", 1)
	require.NoError(t, err)
	assert.Equal(t, 5, g)

	g, err = mapping.GlobalIndex(1, "E1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, g)
}

// TestBuildOverlapIndexMap_NosymCollapse verifies that without complex
// symmetry every orbital lands in the synthetic irrep.
func TestBuildOverlapIndexMap_NosymCollapse(t *testing.T) {
	store := nosymStore()
	cores, err := fragment.FrozenCores(store, 1, false)
	require.NoError(t, err)

	mapping, err := fragment.BuildOverlapIndexMap(store, cores, false)
	require.NoError(t, err)

	g, err := mapping.GlobalIndex(1, fragment.SyntheticIrrep, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g)

	g, err = mapping.GlobalIndex(2, fragment.SyntheticIrrep, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, g)

	_, err = mapping.GlobalIndex(1, "AA", 1)
	require.ErrorIs(t, err, fragment.ErrUnknownIrrep)
}

// TestGlobalIndex_Errors verifies the sentinel mapping for bad lookups.
func TestGlobalIndex_Errors(t *testing.T) {
	store := symStore()
	cores, err := fragment.FrozenCores(store, 1, true)
	require.NoError(t, err)
	mapping, err := fragment.BuildOverlapIndexMap(store, cores, true)
	require.NoError(t, err)

	_, err = mapping.GlobalIndex(1, "B2", 1)
	require.ErrorIs(t, err, fragment.ErrUnknownIrrep)

	_, err = mapping.GlobalIndex(1, "A1", 0)
	require.ErrorIs(t, err, fragment.ErrOrbitalOutOfRange)

	_, err = mapping.GlobalIndex(1, "A1", 3)
	require.ErrorIs(t, err, fragment.ErrOrbitalOutOfRange)

	_, err = mapping.GlobalIndex(3, "A1", 1)
	require.ErrorIs(t, err, fragment.ErrIndexMapping)
}

// TestOverlapResolver_Signed verifies the packed-triangle lookup including
// the stored sign, argument symmetry of the offset, and the
// symmetry-forbidden zero.
func TestOverlapResolver_Signed(t *testing.T) {
	store := symStore()
	cores, err := fragment.FrozenCores(store, 1, true)
	require.NoError(t, err)
	r, err := fragment.NewOverlapResolver(store, cores, true, true)
	require.NoError(t, err)

	id := func(index int, irrep string) orbital.Identity {
		return orbital.Identity{Index: index, Irrep: irrep}
	}

	v, err := r.Overlap(id(1, "A1"), id(1, "A1"))
	require.NoError(t, err)
	assert.InDelta(t, 0.41, v, 1e-12)

	v, err = r.Overlap(id(2, "A1"), id(1, "A1"))
	require.NoError(t, err)
	assert.InDelta(t, -0.23, v, 1e-12)

	v, err = r.OverlapAbs(id(2, "A1"), id(1, "A1"))
	require.NoError(t, err)
	assert.InDelta(t, 0.23, v, 1e-12)

	v, err = r.Overlap(id(1, "E1"), id(1, "E1"))
	require.NoError(t, err)
	assert.InDelta(t, 0.17, v, 1e-12)

	// Different irreps never overlap.
	v, err = r.Overlap(id(1, "A1"), id(1, "E1"))
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestOverlapResolver_SpinChannels verifies the spin-B record twin and the
// cross-spin zero of unrestricted calculations.
func TestOverlapResolver_SpinChannels(t *testing.T) {
	store := nosymStore()
	cores, err := fragment.FrozenCores(store, 1, false)
	require.NoError(t, err)
	r, err := fragment.NewOverlapResolver(store, cores, false, false)
	require.NoError(t, err)

	id := func(index int, spin orbital.Spin) orbital.Identity {
		return orbital.Identity{Index: index, Irrep: fragment.SyntheticIrrep, Spin: spin}
	}

	v, err := r.Overlap(id(2, orbital.SpinA), id(1, orbital.SpinA))
	require.NoError(t, err)
	assert.InDelta(t, 0.31, v, 1e-12)

	v, err = r.Overlap(id(2, orbital.SpinB), id(1, orbital.SpinB))
	require.NoError(t, err)
	assert.InDelta(t, -0.27, v, 1e-12)

	// Cross-spin overlap is exactly zero, no storage involved.
	v, err = r.Overlap(id(2, orbital.SpinA), id(1, orbital.SpinB))
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestOverlapResolver_StorageOrderSymmetry verifies that the packed offset
// is symmetric in its arguments: with fragment 2 stored before fragment 1,
// the fragment-1 global exceeds the fragment-2 global and the lo/hi swap
// must land on the same element.
func TestOverlapResolver_StorageOrderSymmetry(t *testing.T) {
	m := kfstore.NewMemStore()
	m.SetString(kfstore.SecSymmetry, kfstore.VarSymLabels, "A1")
	m.SetInts(kfstore.SecSymmetry, kfstore.VarCoreOrbitals, []int{0})
	m.SetInts(kfstore.SecSFOs, kfstore.VarFragment, []int{2, 1})
	m.SetString(kfstore.SecSFOs, kfstore.VarSubspecies, "A1 A1")
	m.SetString(kfstore.SecSFOs, kfstore.VarFragType, "F2 F1")
	m.SetInts(kfstore.SecSFOs, kfstore.VarSFOIndex, []int{1, 2})

	tri := make([]float64, 3)
	tri[packed(1, 2)] = 0.55
	m.SetFloats("A1", kfstore.VarOverlap, tri)

	cores, err := fragment.FrozenCores(m, 1, true)
	require.NoError(t, err)
	r, err := fragment.NewOverlapResolver(m, cores, true, true)
	require.NoError(t, err)

	// Fragment 1's only orbital has global 2, fragment 2's global 1.
	v, err := r.Overlap(
		orbital.Identity{Index: 1, Irrep: "A1"},
		orbital.Identity{Index: 1, Irrep: "A1"})
	require.NoError(t, err)
	assert.InDelta(t, 0.55, v, 1e-12)
}

// TestOverlapResolver_TruncatedRecord verifies that an offset past the end
// of a stored triangle surfaces as an index-mapping failure instead of a
// wrong value. Shapes the storage convention cannot express end up here.
func TestOverlapResolver_TruncatedRecord(t *testing.T) {
	store := symStore()
	store.SetFloats("A1", kfstore.VarOverlap, []float64{0.1, 0.2})

	cores, err := fragment.FrozenCores(store, 1, true)
	require.NoError(t, err)
	r, err := fragment.NewOverlapResolver(store, cores, true, true)
	require.NoError(t, err)

	_, err = r.Overlap(
		orbital.Identity{Index: 2, Irrep: "A1"},
		orbital.Identity{Index: 1, Irrep: "A1"})
	require.ErrorIs(t, err, fragment.ErrIndexMapping)
}

// TestOverlapResolver_OutOfRange verifies bounds enforcement on the active
// index.
func TestOverlapResolver_OutOfRange(t *testing.T) {
	store := symStore()
	cores, err := fragment.FrozenCores(store, 1, true)
	require.NoError(t, err)
	r, err := fragment.NewOverlapResolver(store, cores, true, true)
	require.NoError(t, err)

	_, err = r.Overlap(
		orbital.Identity{Index: 9, Irrep: "A1"},
		orbital.Identity{Index: 1, Irrep: "A1"})
	require.ErrorIs(t, err, fragment.ErrOrbitalOutOfRange)
}
