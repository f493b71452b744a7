package analysis

import "errors"

// Sentinel errors returned by the analyzer.
var (
	// ErrEmptyFile indicates a record store with no sections: an empty or
	// invalid input file. No partial analyzer is ever returned.
	ErrEmptyFile = errors.New("analysis: record store has no sections")

	// ErrUnknownFragment indicates a fragment number outside {1, 2}.
	ErrUnknownFragment = errors.New("analysis: unknown fragment number")

	// ErrBadWindow indicates a negative orbital-window bound.
	ErrBadWindow = errors.New("analysis: orbital window bounds must be non-negative")
)
