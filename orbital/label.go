package orbital

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLabel parses "<index>_<irrep>" or "<index>_<irrep>_<spin>" into an
// Identity. The index must be a positive base-10 integer, the irrep any
// non-empty token free of underscores, and the spin one of "A" or "B".
// ParseLabel is the exact inverse of Identity.Label for valid identities.
func ParseLabel(label string) (Identity, error) {
	parts := strings.Split(label, "_")
	if len(parts) != 2 && len(parts) != 3 {
		return Identity{}, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}

	index, err := strconv.Atoi(parts[0])
	if err != nil || index < 1 {
		return Identity{}, fmt.Errorf("%w: %q: index must be a positive integer", ErrInvalidLabel, label)
	}
	if parts[1] == "" {
		return Identity{}, fmt.Errorf("%w: %q: empty irrep", ErrInvalidLabel, label)
	}

	id := Identity{Index: index, Irrep: parts[1]}
	if len(parts) == 3 {
		switch Spin(parts[2]) {
		case SpinA, SpinB:
			id.Spin = Spin(parts[2])
		default:
			return Identity{}, fmt.Errorf("%w: %q in %q", ErrInvalidSpin, parts[2], label)
		}
	}

	return id, nil
}

// Label serializes the identity to its compact text form.
func (id Identity) Label() string {
	if id.Spin == SpinNone {
		return fmt.Sprintf("%d_%s", id.Index, id.Irrep)
	}

	return fmt.Sprintf("%d_%s_%s", id.Index, id.Irrep, id.Spin)
}

// String implements fmt.Stringer.
func (id Identity) String() string { return id.Label() }
