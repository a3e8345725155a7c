// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid logic duplication — each facade delegates to the canonical
//     implementation and never changes its validation or iteration order.

package sparse

// ---------- Constructors & Utilities ----------

// NewZeros returns an empty rows×cols matrix. It is a thin alias of New
// with an intention-revealing name: a sparse matrix with no entries IS the
// zero matrix of that shape. Complexity: O(1).
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	return New(rows, cols, opts...)
}

// ZerosLike returns a new empty matrix with the same shape and numeric
// policy as m. Handy as an additive identity in tests and pipelines.
// Complexity: O(1).
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return New(m.rows, m.cols, WithValidateNaNInf(m.validateNaNInf))
}

// NewIdentity returns I_n (n×n; ones on the diagonal). As a sparse matrix
// this costs O(n) entries, making it a practical neutral element even for
// large n. Complexity: O(n).
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	m, err := New(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[index{row: i, col: i}] = 1.0
	}

	return m, nil
}

// ---------- Arithmetic aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m *Matrix, alpha float64) (*Matrix, error) { return Scale(m, alpha) }
