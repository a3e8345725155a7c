// Package sparse implements a dictionary-of-keys sparse matrix and the
// arithmetic that operates on it without materializing dense storage.
//
// The sparse package provides:
//
//   - Matrix — dimensions plus a map from (row, col) to nonzero value,
//     with strict bounds-checked Set/At accessors and a deterministic
//     row-major view of its entries.
//   - Add, Sub, Mul, Scale, Negate, Transpose — kernels that touch only
//     nonzeros: addition and subtraction walk the union of the two key
//     sets, multiplication pairs nonzeros through their shared middle
//     index instead of scanning the dense grid.
//   - Parse and Format — the coordinate text codec ("rows=", "cols=",
//     then one "(row, col, value)" line per entry) obeying the
//     round-trip law Parse(Format(m)) == m.
//
// Two invariants hold for every Matrix the package hands out:
//
//  1. No stored entry has value exactly zero. Setting a cell to zero
//     removes it; arithmetic drops cancelled sums.
//  2. Every stored key lies inside the declared rows×cols bounds.
//
// Parsing is tolerant where direct construction is strict: an entry
// whose indices fall outside the declared shape is silently dropped by
// Parse but rejected by Set with ErrOutOfRange. That asymmetry is a
// documented policy, not an accident — dirty input files degrade
// gracefully while programmatic construction fails fast.
package sparse
