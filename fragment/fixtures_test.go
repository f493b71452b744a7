package fragment_test

import (
	"github.com/orbtools/orbkit/kfstore"
)

// symStore builds a minimal restricted store with complex symmetry and
// frozen cores. Two fragments share two irreps:
//
//	irrep  cores  frag1 active  frag2 active
//	A1     2      2 (isfo 1,2)  1 (isfo 3)
//	E1     1      1 (isfo 1)    1 (isfo 2)
//
// The gross-population record interleaves the blocks per irrep:
// [core core 1.1 1.2 2.1 | core 1.3 2.2].
func symStore() *kfstore.MemStore {
	m := kfstore.NewMemStore()

	m.SetInt(kfstore.SecGeneral, kfstore.VarNSpin, 1)
	m.SetString(kfstore.SecSymmetry, kfstore.VarGroupLabel, "C(3V)")
	m.SetString(kfstore.SecSymmetry, kfstore.VarSymLabels, "A1 E1")
	m.SetInts(kfstore.SecSymmetry, kfstore.VarCoreOrbitals, []int{2, 1})

	m.SetInt(kfstore.SecSFOs, kfstore.VarSFOCount, 5)
	m.SetInts(kfstore.SecSFOs, kfstore.VarFragment, []int{1, 1, 1, 2, 2})
	m.SetString(kfstore.SecSFOs, kfstore.VarSubspecies, "A1 A1 E1 A1 E1")
	m.SetString(kfstore.SecSFOs, kfstore.VarFragType, "AsH3 AsH3 AsH3 GaCl3 GaCl3")
	m.SetInts(kfstore.SecSFOs, kfstore.VarSFOIndex, []int{1, 2, 1, 3, 2})
	m.SetFloats(kfstore.SecSFOs, kfstore.VarEnergy, []float64{-1.0, -0.5, -0.4, -0.9, -0.3})
	m.SetFloats(kfstore.SecSFOs, kfstore.VarOccupation, []float64{2, 2, 2, 2, 0})

	m.SetFloats(kfstore.SecSFOPopul, kfstore.VarGrossPop,
		[]float64{9.9, 9.8, 1.1, 1.2, 2.1, 8.8, 1.3, 2.2})

	// Packed lower triangles per complex irrep: A1 spans globals 1..5
	// (2 cores + 3 active), E1 spans globals 1..3 (1 core + 2 active).
	a1 := make([]float64, 15)
	a1[packed(3, 5)] = 0.41  // frag1 1_A1 x frag2 3_A1
	a1[packed(4, 5)] = -0.23 // frag1 2_A1 x frag2 3_A1
	m.SetFloats("A1", kfstore.VarOverlap, a1)

	e1 := make([]float64, 6)
	e1[packed(2, 3)] = 0.17 // frag1 1_E1 x frag2 1_E1
	m.SetFloats("E1", kfstore.VarOverlap, e1)

	return m
}

// nosymStore builds an unrestricted store with a symmetry-less complex over
// fragments that carry their own single irrep "AA". One frozen core. The
// gross-population record holds the spin-A block then the spin-B block:
// [core 1.1 1.2 2.1 2.2 | core 1.5 1.6 2.5 2.6].
func nosymStore() *kfstore.MemStore {
	m := kfstore.NewMemStore()

	m.SetInt(kfstore.SecGeneral, kfstore.VarNSpin, 2)
	m.SetString(kfstore.SecSymmetry, kfstore.VarGroupLabel, "NOSYM")
	m.SetString(kfstore.SecSymmetry, kfstore.VarSymLabels, "A")
	m.SetInts(kfstore.SecSymmetry, kfstore.VarCoreOrbitals, []int{1})

	m.SetInt(kfstore.SecSFOs, kfstore.VarSFOCount, 4)
	m.SetInts(kfstore.SecSFOs, kfstore.VarFragment, []int{1, 1, 2, 2})
	m.SetString(kfstore.SecSFOs, kfstore.VarSubspecies, "AA AA AA AA")
	m.SetString(kfstore.SecSFOs, kfstore.VarFragType, "NH2 NH2 CH3 CH3")
	m.SetInts(kfstore.SecSFOs, kfstore.VarSFOIndex, []int{1, 2, 3, 4})
	m.SetFloats(kfstore.SecSFOs, kfstore.VarEnergy, []float64{-0.8, -0.3, -0.7, 0.1})
	m.SetFloats(kfstore.SecSFOs, kfstore.VarEnergy+kfstore.SpinBSuffix,
		[]float64{-0.75, -0.25, -0.65, 0.15})
	m.SetFloats(kfstore.SecSFOs, kfstore.VarOccupation, []float64{1, 1, 1, 0})
	m.SetFloats(kfstore.SecSFOs, kfstore.VarOccupation+kfstore.SpinBSuffix,
		[]float64{1, 0, 1, 0})

	m.SetFloats(kfstore.SecSFOPopul, kfstore.VarGrossPop,
		[]float64{7.7, 1.1, 1.2, 2.1, 2.2, 7.7, 1.5, 1.6, 2.5, 2.6})

	// One synthetic-irrep triangle per spin, spanning globals 1..5
	// (1 core + 4 active): frag1 maps to globals 2,3 and frag2 to 4,5.
	a := make([]float64, 15)
	a[packed(3, 4)] = 0.31 // frag1 2_AA x frag2 1_AA, spin A
	m.SetFloats("A", kfstore.VarOverlap, a)

	b := make([]float64, 15)
	b[packed(3, 4)] = -0.27 // same pair, spin B
	m.SetFloats("A", kfstore.VarOverlap+kfstore.SpinBSuffix, b)

	return m
}

// packed mirrors the lower-triangle offset formula for fixture writing.
func packed(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	return hi*(hi-1)/2 + lo - 1
}
