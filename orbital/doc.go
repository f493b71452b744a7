// Package orbital defines the value types shared by the analysis layers:
// orbital identities with their compact text labels, resolved fragment and
// molecular orbitals, and orbital pairs produced by ranking queries.
//
// An Identity names one orbital by its 1-based index within an irreducible
// representation (irrep), the irrep label, and an optional spin channel.
// The index is always relative to the active, frozen-core-excluded
// numbering of the irrep; it is never a global storage index. The text
// form is "<index>_<irrep>" or "<index>_<irrep>_<spin>", e.g. "8_A1" or
// "4_E1:1_B", and round-trips exactly through ParseLabel and Label.
//
// SFO and MO carry an Identity resolved against calculation data (energy,
// occupation, gross population, frontier rank). Pair couples one orbital
// per fragment with their overlap; pairs exist only as query results.
package orbital
