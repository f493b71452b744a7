// Package orbkit analyzes fragment-orbital calculations stored in ADF "KF"
// record files: it resolves symmetrized fragment orbitals (SFOs) across
// three coexisting numbering schemes, reads packed overlap matrices, and
// derives Pauli-repulsion and orbital-interaction indicators for chemists'
// orbital labels like "8_A1" or "14_A1_B".
//
// The module is organized under four subpackages plus a CLI:
//
//	kfstore/  — (section, variable) record access: in-memory store, JSON
//	            dump loader, bounded read cache
//	orbital/  — orbital identities, labels, spins, pairs and indicators
//	fragment/ — per-fragment data assembly, frozen-core tables, index
//	            remapping and overlap resolution
//	analysis/ — the calculation-level facade: restricted/unrestricted
//	            analyzers, orbital windows, matrices and rankings
//	cmd/orbkit — command-line driver over JSON dumps
//
// Open a calculation and query it:
//
//	a, err := analysis.Open("calc.json", analysis.Settings{})
//	if err != nil { ... }
//	s, err := a.SFOOverlap(orbital.Label("8_A1"), orbital.Label("14_A1"))
//
// Analyzers are immutable after construction and independent of each
// other; fan out over many files freely.
package orbkit
