// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. Do NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> format -> numeric policy.

var (
	// ErrInvalidDimensions indicates a negative row or column count was
	// requested at construction. Zero dimensions are legal (a 0×n matrix
	// has no representable entries but a well-defined shape).
	ErrInvalidDimensions = errors.New("sparse: dimensions must be non-negative")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// declared bounds. The strict accessors (At/Set) MUST return this, not
	// panic; Parse deliberately filters instead of surfacing it (see codec.go).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrBadFormat indicates malformed coordinate text: a missing or broken
	// rows=/cols= header, negative declared dimensions, or an entry line that
	// does not match the "(row, col, value)" triple pattern. Out-of-range
	// indices in an otherwise well-formed entry are NOT a format error.
	ErrBadFormat = errors.New("sparse: malformed coordinate text")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is
	// required.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, Scale, ingestion).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)
