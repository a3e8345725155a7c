// Package sparsematrix is a small toolkit for arithmetic on sparse
// matrices stored in a coordinate (row, col, value) text format.
//
// 🚀 What is in the box?
//
//	A compact, deterministic library plus a tiny calculator CLI:
//		• sparse/ — the dictionary-of-keys Matrix type, strict Set/At
//		  accessors, Add/Sub/Mul/Scale/Transpose kernels, and the
//		  coordinate-text Parse/Format codec with its round-trip law
//		• calc/   — the collaborator layer: operation dispatch, matrix
//		  file loading, timestamped result files, JSON run summaries,
//		  YAML job configs and a history log
//		• cmd/sparsecalc — interactive menu and batch-job front end
//
// ✨ Design rules
//
//   - Zero values are never stored: a Matrix holds only nonzeros
//   - Tolerant parsing, strict construction — Parse silently drops
//     out-of-bounds entries, Set refuses them with ErrOutOfRange
//   - Every failure is a sentinel error checked via errors.Is
//   - Iteration order is deterministic (row-major) wherever entries
//     leave the package, so formatted output is reproducible
//
// Quick taste:
//
//	m, _ := sparse.Parse("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n")
//	sum, err := sparse.Add(m, m)
//
// See sparse/doc.go and calc/doc.go for package-level detail.
package sparsematrix
