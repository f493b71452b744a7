package fragment

import "github.com/orbtools/orbkit/kfstore"

// SyntheticIrrep is the catch-all irrep every orbital collapses into when
// the complex calculation carries no point-group symmetry.
const SyntheticIrrep = "A"

// FrozenCoreTable maps an irrep to the number of core orbitals excluded
// from the active numbering in that irrep. The keys are the irreps present
// among a fragment's active orbitals, plus the synthetic "A" entry when
// the complex has no symmetry. When the complex is symmetry-less but the
// fragment itself is not, both kinds of key coexist and callers pick by
// complex-level vs. fragment-level context, mirroring the storage format.
type FrozenCoreTable map[string]int

// FrozenCores computes the frozen-core shift table for one fragment.
//
// The fragment's active irreps (first-occurrence storage order) are zipped
// positionally with the complex-wide per-irrep core counts from
// ("Symmetry", "ncbs"). The zip is only correct because the storage
// convention emits both lists in the same canonical order; complex irreps
// with no orbitals on this fragment simply stay absent from the table.
func FrozenCores(store kfstore.Store, fragIndex int, usesSymmetry bool) (FrozenCoreTable, error) {
	meta, err := readSFOMetadata(store)
	if err != nil {
		return nil, err
	}

	return frozenCores(store, meta, fragIndex, usesSymmetry)
}

func frozenCores(store kfstore.Store, meta *sfoMetadata, fragIndex int, usesSymmetry bool) (FrozenCoreTable, error) {
	ordered := meta.orderedIrreps(fragIndex)
	coreCounts, err := store.ReadInts(kfstore.SecSymmetry, kfstore.VarCoreOrbitals)
	if err != nil {
		return nil, err
	}

	table := make(FrozenCoreTable, len(ordered)+1)
	for _, irrep := range ordered {
		table[irrep] = 0
	}
	for i, irrep := range ordered {
		if i >= len(coreCounts) {
			break
		}
		table[irrep] = coreCounts[i]
	}

	if !usesSymmetry {
		total := 0
		for _, n := range coreCounts {
			total += n
		}
		table[SyntheticIrrep] = total
	}

	return table, nil
}
