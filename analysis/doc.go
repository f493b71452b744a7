// Package analysis is the top-level facade over one fragment-analysis
// calculation: it detects the calculation shape (restricted/unrestricted,
// symmetry used or not, relativistic or not) from the record store, builds
// the two fragments and the complex, and answers orbital queries by label
// or identity.
//
// New returns one of two concrete analyzer variants behind the Analyzer
// interface, selected once by the spin-channel count; the unrestricted
// variant threads the spin channel through every accessor and overlap
// path. SFOOrbitals carves a HOMO−m..LUMO+n window out of each fragment
// and returns an SFOManager holding the ordered orbital lists, the dense
// inter-fragment overlap matrix, and the derived Pauli-repulsion and
// orbital-interaction indicators with their ranking queries. MOOrbitals is
// the complex-side counterpart.
//
// Everything is computed eagerly from the store at construction or query
// time and immutable afterwards; analyzing another file means opening
// another analyzer. Analyzers are independent of each other, so batch
// fan-out over many files is safe.
package analysis
