package fragment

import "errors"

// Sentinel errors for data assembly and index translation.
var (
	// ErrUnknownIrrep indicates a lookup for an irrep the fragment has no
	// active orbitals in.
	ErrUnknownIrrep = errors.New("fragment: unknown irrep")

	// ErrOrbitalOutOfRange indicates a 1-based orbital index beyond the
	// irrep's active orbitals. Out-of-range requests always surface; they
	// are never clamped to the nearest valid orbital.
	ErrOrbitalOutOfRange = errors.New("fragment: orbital index out of range")

	// ErrIndexMapping indicates inconsistent index arithmetic: parallel
	// metadata arrays of different lengths, a non-positive global overlap
	// index, or an offset past the end of a stored record. Mixed
	// fragment/complex symmetry shapes that the storage convention cannot
	// express end up here.
	ErrIndexMapping = errors.New("fragment: inconsistent index mapping")
)
