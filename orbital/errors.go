package orbital

import "errors"

// Sentinel errors for identity parsing.
var (
	// ErrInvalidLabel indicates a label that does not match
	// "<index>_<irrep>" or "<index>_<irrep>_<spin>".
	ErrInvalidLabel = errors.New("orbital: invalid label")

	// ErrInvalidSpin indicates a spin token outside {A, B}.
	ErrInvalidSpin = errors.New("orbital: invalid spin")
)
