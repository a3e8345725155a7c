// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/sparse"
)

// ErrUnknownOp indicates an operation selector outside {add, subtract,
// multiply}.
var ErrUnknownOp = errors.New("calc: unknown operation")

// Op selects one of the three calculator operations.
type Op int

const (
	// OpAdd selects element-wise addition.
	OpAdd Op = iota + 1
	// OpSub selects element-wise subtraction.
	OpSub
	// OpMul selects matrix multiplication.
	OpMul
)

// opNames are the canonical selector spellings, also used in result file
// names and history lines.
var opNames = map[Op]string{
	OpAdd: "add",
	OpSub: "subtract",
	OpMul: "multiply",
}

// String returns the canonical selector spelling, or "unknown".
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}

	return "unknown"
}

// ParseOp maps a selector string onto an Op. Matching is case-insensitive
// and accepts the common short forms ("sub", "mul").
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "addition":
		return OpAdd, nil
	case "subtract", "sub", "subtraction":
		return OpSub, nil
	case "multiply", "mul", "multiplication":
		return OpMul, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownOp)
	}
}

// Apply dispatches op onto the sparse kernels. Shape validation (and every
// other failure mode) is the kernels' business; Apply adds nothing but the
// selector mapping.
func Apply(op Op, a, b *sparse.Matrix) (*sparse.Matrix, error) {
	switch op {
	case OpAdd:
		return sparse.Add(a, b)
	case OpSub:
		return sparse.Sub(a, b)
	case OpMul:
		return sparse.Mul(a, b)
	default:
		return nil, fmt.Errorf("%d: %w", op, ErrUnknownOp)
	}
}

// OperandInfo is the shape/sparsity snapshot of one matrix as recorded in
// summaries and history lines.
type OperandInfo struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
	NNZ  int `json:"non_zero_elements" yaml:"non_zero_elements"`
}

// String renders the compact "RxC(nnz)" form used in history lines.
func (oi OperandInfo) String() string {
	return fmt.Sprintf("%dx%d(%d)", oi.Rows, oi.Cols, oi.NNZ)
}

// infoOf snapshots a matrix; nil-safe because Run validates first.
func infoOf(m *sparse.Matrix) OperandInfo {
	rows, cols := m.Shape()

	return OperandInfo{Rows: rows, Cols: cols, NNZ: m.NNZ()}
}

// Result is one completed calculator run: the operation, both operand
// snapshots, the result matrix and the timing envelope.
type Result struct {
	Op        Op
	A, B      OperandInfo
	Matrix    *sparse.Matrix
	Elapsed   time.Duration
	Timestamp time.Time
}

// Run executes op over a and b and wraps the outcome with operand
// snapshots and timing. The operand snapshots are taken before the kernel
// call, so a Result always describes exactly what was fed in.
func Run(op Op, a, b *sparse.Matrix) (*Result, error) {
	if err := sparse.ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := sparse.ValidateNotNil(b); err != nil {
		return nil, err
	}

	r := &Result{
		Op:        op,
		A:         infoOf(a),
		B:         infoOf(b),
		Timestamp: time.Now(),
	}

	start := time.Now()
	m, err := Apply(op, a, b)
	if err != nil {
		return nil, err
	}
	r.Elapsed = time.Since(start)
	r.Matrix = m

	return r, nil
}
