// SPDX-License-Identifier: MIT

// Package sparse - dictionary-of-keys storage & safe accessors.
//
// Purpose:
//   - Store only nonzero cells in a map keyed by the composite (row, col) index.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the two structural invariants (no stored zeros, all keys in bounds)
//     unbreakable through the exported API.
//   - Provide a deterministic row-major view (Do/Entries) over unordered map
//     storage so that formatted output is reproducible across runs.
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) expected; Clone: O(nnz); Do/Entries: O(nnz·log nnz)
//     for the boundary sort; Equal: O(nnz).

package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// matrixErrorf wraps a sentinel with a uniform Matrix context and callsite
// indices. Keep tags in constants for grep-ability and consistency.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// index is the composite map key identifying one cell.
type index struct {
	row, col int
}

// Entry is one nonzero cell in interchange form. The struct tags serve the
// JSON/YAML document surface (see json.go); arithmetic never allocates these.
type Entry struct {
	Row   int     `json:"row" yaml:"row"`
	Col   int     `json:"col" yaml:"col"`
	Value float64 `json:"value" yaml:"value"`
}

// Matrix is a sparse rows×cols matrix holding only nonzero values.
//   - rows, cols hold the declared shape (non-negative).
//   - data maps in-bounds (row, col) keys to nonzero float64 values.
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy
//     default from options.go).
//
// The zero value of Matrix is not usable; construct via New, Parse or
// FromDocument. Once fully constructed a Matrix is treated as immutable by
// every kernel in this package: operations allocate fresh results and never
// mutate their operands.
type Matrix struct {
	rows, cols     int
	data           map[index]float64
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols sparse matrix with no entries.
//
// Implementation:
//   - Stage 1 (Validate): rows ≥ 0 and cols ≥ 0, else ErrInvalidDimensions.
//   - Stage 2 (Prepare): allocate the empty key map and apply options.
//   - Stage 3 (Finalize): return the new Matrix.
//
// Zero dimensions are legal: a 0×n or n×0 matrix has a well-defined shape
// and an always-empty entry set (every Set fails with ErrOutOfRange).
// Complexity: O(1) time and memory — nothing dense is ever allocated.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Matrix{
		rows:           rows,
		cols:           cols,
		data:           make(map[index]float64),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the declared row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (nonzero) entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.data) }

// inBounds reports whether (row, col) lies inside the declared shape.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns the value at (row, col), or 0 for any in-bounds cell that has
// no stored entry — the defining sparse-access contract.
//
// Implementation:
//   - Stage 1: bounds check; out-of-range reads are ErrOutOfRange, never 0.
//   - Stage 2: map lookup; absent keys yield the zero value for free.
//
// Complexity: O(1) expected.
func (m *Matrix) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, matrixErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[index{row, col}], nil
}

// Set stores v at (row, col), deleting the entry when v == 0.
//
// Implementation:
//   - Stage 1: bounds check — this is the strict constructor path; unlike
//     Parse it refuses out-of-range positions with ErrOutOfRange.
//   - Stage 2: enforce the numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: v == 0 removes any existing entry (invariant: zeros are never
//     stored); otherwise insert or overwrite.
//
// Complexity: O(1) expected.
func (m *Matrix) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return matrixErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return matrixErrorf(ctxSet, row, col, ErrNaNInf)
	}
	if v == 0 {
		delete(m.data, index{row, col})

		return nil
	}
	m.data[index{row, col}] = v

	return nil
}

// Clone returns a deep copy (new key map, same shape and numeric policy).
// Mutations of the copy never affect the original. Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	cp := make(map[index]float64, len(m.data))
	for ij, v := range m.data {
		cp[ij] = v
	}

	return &Matrix{
		rows:           m.rows,
		cols:           m.cols,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// sortedKeys returns the stored keys in row-major order (row asc, then col
// asc). Map iteration order is randomized by the runtime, so every exported
// view sorts here to keep output reproducible across runs.
func (m *Matrix) sortedKeys() []index {
	keys := make([]index, 0, len(m.data))
	for ij := range m.data {
		keys = append(keys, ij)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].row != keys[b].row {
			return keys[a].row < keys[b].row
		}

		return keys[a].col < keys[b].col
	})

	return keys
}

// Do visits each nonzero entry in row-major order and calls f(row, col, v).
// Returning false from f stops the walk early. The callback must not mutate
// the matrix. Complexity: O(nnz·log nnz) for the ordering, O(nnz) visits.
func (m *Matrix) Do(f func(row, col int, v float64) bool) {
	for _, ij := range m.sortedKeys() {
		if !f(ij.row, ij.col, m.data[ij]) {
			return
		}
	}
}

// Entries returns all nonzero cells as a fresh slice in row-major order.
// Complexity: O(nnz·log nnz) time, O(nnz) memory.
func (m *Matrix) Entries() []Entry {
	keys := m.sortedKeys()
	out := make([]Entry, len(keys))
	for i, ij := range keys {
		out[i] = Entry{Row: ij.row, Col: ij.col, Value: m.data[ij]}
	}

	return out
}

// Equal reports whether m and other have identical shape and identical
// nonzero entries (value equality, independent of insertion order).
// A nil operand is never equal to a non-nil one. Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.data) != len(other.data) {
		return false
	}
	for ij, v := range m.data {
		if ov, ok := other.data[ij]; !ok || ov != v {
			return false
		}
	}

	return true
}

// String renders a compact diagnostic dump: the shape followed by the
// nonzero entries in row-major order. Intended for logs and debugging, not
// for persistence — use Format for the canonical text shape.
// Complexity: O(nnz·log nnz).
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d nnz=%d", m.rows, m.cols, len(m.data))
	m.Do(func(row, col int, v float64) bool {
		fmt.Fprintf(&b, " (%d,%d)=%g", row, col, v)

		return true
	})

	return b.String()
}
