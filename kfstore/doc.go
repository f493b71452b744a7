// Package kfstore defines the read-only record-store abstraction over the
// binary KF files produced by ADF fragment-analysis calculations.
//
// A KF file is addressed as a flat key-value store keyed by
// (section, variable) pairs; a value is a scalar, a string, or a flat
// numeric sequence. The binary reader itself is an external collaborator
// and is not reimplemented here: this package only fixes the
// consumption contract (Store), names the well-known addresses used by the
// analysis layers, and ships the implementations the rest of the module
// needs in practice:
//
//   - MemStore  – an in-memory Store with Set* builders, used by tests and
//     by programmatic callers that already hold the decoded records.
//   - LoadJSON  – loads a MemStore from a JSON dump of a KF file, the shape
//     trimmed test fixtures take.
//   - NewCachedStore – a bounded FIFO read-through cache over ReadFloats,
//     sized for the per-irrep packed overlap triangles, which are the only
//     records large enough to be worth caching.
//
// Stores are opened once per input file, never mutated afterwards, and are
// safe to share read-only across every facade derived from them.
package kfstore
