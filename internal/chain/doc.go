// Package chain implements the relay chain: an append-only sequence of
// entries persisted as a JSON array on disk.
//
// The chain is the tool's single source of truth. Every run loads the
// full sequence, appends exactly one entry, and rewrites the file. There
// are no partial updates and no deletions.
//
// # Invariants
//
//   - Entry i (1-indexed) has Run == i. No gaps, no duplicates.
//   - Entries are immutable once written.
//   - Insertion order == chronological order == run order.
//
// Load verifies the run-number invariant; a file that parses but violates
// it is treated as corrupt, not repaired. The tool favors visible failure
// over silent data loss.
package chain
