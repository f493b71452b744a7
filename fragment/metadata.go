package fragment

import (
	"fmt"
	"strings"

	"github.com/orbtools/orbkit/kfstore"
)

// sfoMetadata is the decoded view of the parallel per-SFO arrays in the
// "SFOs" section: for every active orbital of both fragments combined, in
// storage order, its owning fragment and its irrep label.
type sfoMetadata struct {
	fragments []int
	irreps    []string
}

func readSFOMetadata(store kfstore.Store) (*sfoMetadata, error) {
	fragments, err := store.ReadInts(kfstore.SecSFOs, kfstore.VarFragment)
	if err != nil {
		return nil, err
	}
	subspecies, err := store.ReadString(kfstore.SecSFOs, kfstore.VarSubspecies)
	if err != nil {
		return nil, err
	}

	irreps := strings.Fields(subspecies)
	if len(irreps) != len(fragments) {
		return nil, fmt.Errorf("%w: %d fragment entries vs %d irrep labels",
			ErrIndexMapping, len(fragments), len(irreps))
	}

	return &sfoMetadata{fragments: fragments, irreps: irreps}, nil
}

// rows returns the storage positions of the SFOs owned by fragIndex.
func (m *sfoMetadata) rows(fragIndex int) []int {
	var out []int
	for i, f := range m.fragments {
		if f == fragIndex {
			out = append(out, i)
		}
	}

	return out
}

// orderedIrreps returns fragIndex's irreps in first-occurrence storage
// order. The order is load-bearing for the frozen-core zip and the
// gross-population walk; it must never be re-sorted.
func (m *sfoMetadata) orderedIrreps(fragIndex int) []string {
	seen := make(map[string]bool)
	var out []string
	for i, f := range m.fragments {
		if f != fragIndex || seen[m.irreps[i]] {
			continue
		}
		seen[m.irreps[i]] = true
		out = append(out, m.irreps[i])
	}

	return out
}

// countByIrrep returns fragIndex's active orbital count per irrep.
func (m *sfoMetadata) countByIrrep(fragIndex int) map[string]int {
	out := make(map[string]int)
	for i, f := range m.fragments {
		if f == fragIndex {
			out[m.irreps[i]]++
		}
	}

	return out
}

// fragmentName reads fragIndex's fragment type name from the per-SFO
// fragtype tokens: the token of the fragment's first orbital.
func fragmentName(store kfstore.Store, rows []int) (string, error) {
	raw, err := store.ReadString(kfstore.SecSFOs, kfstore.VarFragType)
	if err != nil {
		return "", err
	}
	names := strings.Fields(raw)
	if len(rows) == 0 || rows[0] >= len(names) {
		return "", fmt.Errorf("%w: fragtype has %d tokens", ErrIndexMapping, len(names))
	}

	return names[rows[0]], nil
}
