// Package fragment reconstructs per-fragment orbital data from the raw
// records of a fragment-analysis KF file and resolves the three orbital
// numbering schemes those records mix:
//
//  1. the active per-irrep index chemists label orbitals with ("8_A1" is
//     the eighth active A1 orbital of a fragment),
//  2. the global per-irrep index the packed lower-triangular overlap
//     matrix is built on, which still counts the frozen-core block at the
//     start of every irrep, and
//  3. the raw offset into the gross-population record, which interleaves
//     frozen-core, fragment-1 and fragment-2 blocks per irrep.
//
// FrozenCores builds the per-irrep core-orbital shift table (1→2),
// BuildOverlapIndexMap materializes the active-to-global translation for
// overlap lookups, and Assemble walks the flat property records into an
// immutable per-fragment Data value (1→3). Fragment and Complex are thin
// read-only facades over the assembled data.
//
// Four orthogonal calculation shapes are handled: restricted vs.
// unrestricted spin treatment, presence of frozen cores, overall
// point-group symmetry, and fragment-level symmetry differing from the
// complex symmetry. When the complex carries no symmetry every orbital
// collapses into the synthetic "A" irrep for overlap and population
// addressing, while the fragments' own irrep labels remain valid for
// energies and occupations; both kinds of key coexist in the frozen-core
// table. Calculations whose fragments use strictly finer symmetry than
// the complex are known-unsupported upstream; the documented arithmetic is
// applied as-is and inconsistent offsets surface as ErrIndexMapping.
package fragment
