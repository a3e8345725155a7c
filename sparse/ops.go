// SPDX-License-Identifier: MIT
// Package sparse: arithmetic kernels over dictionary-of-keys matrices,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All kernels perform strict fail-fast
// validation before touching any entry and return clear errors on
// dimension mismatches. Operands are never mutated; every kernel
// allocates a fresh result.
//
// Purpose:
//   - Keep the cost of every operation proportional to the nonzero counts,
//     never to rows·cols: Add/Sub walk the union of the two key sets, Mul
//     pairs nonzeros through their shared middle index.
//   - Maintain the no-stored-zeros invariant through cancellation: sums and
//     accumulations that land on exactly zero are deleted, not stored.

package sparse

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
)

// Signs used by the shared addSub kernel; kept as named constants so the
// call sites read as intent rather than bare numerics.
const (
	signAdd = 1.0
	signSub = -1.0
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil to avoid wrapping a nil cause.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the
// union-of-keys walk.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result with a's
//     shape and numeric policy.
//   - Stage 2: copy a's entries wholesale (all guaranteed nonzero and in
//     bounds, so the map is written directly).
//   - Stage 3: fold b's entries in: positions present in both operands
//     accumulate; sums landing on exactly zero are deleted so the result
//     never stores a zero.
//
// Only positions in the union of the two key sets are ever touched, so the
// cost is O(nnz(a) + nnz(b)) regardless of the declared shape.
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	res, err := New(a.rows, a.cols, WithValidateNaNInf(a.validateNaNInf))
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Overlay a: every stored entry is nonzero and in bounds by invariant.
	for ij, av := range a.data {
		res.data[ij] = av
	}
	// Fold b in, dropping exact cancellations.
	for ij, bv := range b.data {
		sum := res.data[ij] + sign*bv
		if sum == 0 {
			delete(res.data, ij)
			continue
		}
		res.data[ij] = sum
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
//
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch) —
// both surfaced before any arithmetic begins.
// Complexity: O(nnz(a) + nnz(b)) time, O(nnz(result)) memory.
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, signAdd, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh
// Matrix. Same error surface and complexity as Add.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, signSub, opSub) }

// colVal is one (column, value) pair of a grouped row; used by Mul to pair
// nonzeros sharing a middle index without scanning dense columns.
type colVal struct {
	col int
	v   float64
}

// Mul computes the matrix product C = A × B with result shape
// (a.Rows × b.Cols).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) — fail fast, no partial work.
//   - Stage 2: group b's nonzeros by row index into rowsOfB so that a
//     nonzero (i, k) of a is paired only with the nonzeros (k, j) of b
//     sharing the same middle index k.
//   - Stage 3: for every pairing, accumulate a[i,k]*b[k,j] into c[i,j];
//     accumulations landing on exactly zero are deleted.
//
// The grouping avoids the dense triple loop: cost is O(nnz(b)) for the
// index plus O(matched pairs) for the accumulation. Note that the result
// of a product can be denser than either operand (fill-in) — result
// sparsity is bounded by a.Rows·b.Cols, not by the operand nnz counts.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	res, err := New(a.rows, b.cols, WithValidateNaNInf(a.validateNaNInf))
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Row-index b's nonzeros once: middle index k → list of (j, b[k,j]).
	rowsOfB := make(map[int][]colVal, b.rows)
	for ij, bv := range b.data {
		rowsOfB[ij.row] = append(rowsOfB[ij.row], colVal{col: ij.col, v: bv})
	}

	// Pair each a-nonzero (i, k) with b's row k only.
	for ij, av := range a.data {
		for _, cv := range rowsOfB[ij.col] {
			target := index{row: ij.row, col: cv.col}
			sum := res.data[target] + av*cv.v
			if sum == 0 {
				delete(res.data, target)
				continue
			}
			res.data[target] = sum
		}
	}

	return res, nil
}

// Scale returns alpha*m as a fresh Matrix. A zero alpha yields an empty
// matrix of the same shape (zeros are never stored).
//
// Errors: ErrNilMatrix; ErrNaNInf when m's numeric policy is enabled and
// alpha is NaN or ±Inf.
// Complexity: O(nnz(m)).
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}
	if m.validateNaNInf && (math.IsNaN(alpha) || math.IsInf(alpha, 0)) {
		return nil, opErrorf(opScale, ErrNaNInf)
	}

	res, err := New(m.rows, m.cols, WithValidateNaNInf(m.validateNaNInf))
	if err != nil {
		return nil, opErrorf(opScale, err)
	}
	if alpha == 0 {
		return res, nil
	}
	for ij, v := range m.data {
		res.data[ij] = alpha * v
	}

	return res, nil
}

// Negate returns −m, i.e. Scale(m, −1). Satisfies Sub(a, b) == Add(a, Negate(b)).
func Negate(m *Matrix) (*Matrix, error) { return Scale(m, -1) }

// Transpose returns mᵀ with shape (cols × rows); every entry (i, j, v)
// maps to (j, i, v). Complexity: O(nnz(m)).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	res, err := New(m.cols, m.rows, WithValidateNaNInf(m.validateNaNInf))
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	for ij, v := range m.data {
		res.data[index{row: ij.col, col: ij.row}] = v
	}

	return res, nil
}
