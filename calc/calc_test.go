// Package calc_test covers operation dispatch and run envelopes.
package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/calc"
	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/sparse"
)

// mustParse builds a matrix from coordinate text or fails the test.
func mustParse(t *testing.T, text string) *sparse.Matrix {
	t.Helper()
	m, err := sparse.Parse(text)
	require.NoError(t, err)

	return m
}

func TestParseOp(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in   string
		want calc.Op
	}{
		{"add", calc.OpAdd},
		{"Add", calc.OpAdd},
		{"ADDITION", calc.OpAdd},
		{"subtract", calc.OpSub},
		{"sub", calc.OpSub},
		{"multiply", calc.OpMul},
		{" mul ", calc.OpMul},
	} {
		op, err := calc.ParseOp(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, op, tc.in)
	}

	_, err := calc.ParseOp("divide")
	require.ErrorIs(t, err, calc.ErrUnknownOp)
	_, err = calc.ParseOp("")
	require.ErrorIs(t, err, calc.ErrUnknownOp)
}

func TestOpString_RoundTripsThroughParseOp(t *testing.T) {
	t.Parallel()

	for _, op := range []calc.Op{calc.OpAdd, calc.OpSub, calc.OpMul} {
		back, err := calc.ParseOp(op.String())
		require.NoError(t, err)
		require.Equal(t, op, back)
	}
	require.Equal(t, "unknown", calc.Op(99).String())
}

func TestApply_Dispatch(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n")
	b := mustParse(t, "rows=2\ncols=2\n(0, 1, 3)\n(1, 0, 4)\n")

	sum, err := calc.Apply(calc.OpAdd, a, b)
	require.NoError(t, err)
	require.Equal(t, 4, sum.NNZ())

	diff, err := calc.Apply(calc.OpSub, a, a)
	require.NoError(t, err)
	require.Zero(t, diff.NNZ())

	prod, err := calc.Apply(calc.OpMul, a, b)
	require.NoError(t, err)
	require.Equal(t, []sparse.Entry{
		{Row: 0, Col: 1, Value: 3},
		{Row: 1, Col: 0, Value: 8},
	}, prod.Entries())

	_, err = calc.Apply(calc.Op(0), a, b)
	require.ErrorIs(t, err, calc.ErrUnknownOp)
}

func TestApply_SurfacesKernelErrors(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "rows=2\ncols=3\n")
	b := mustParse(t, "rows=2\ncols=3\n")

	_, err := calc.Apply(calc.OpMul, a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestRun_Envelope(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n")
	b := mustParse(t, "rows=2\ncols=2\n(0, 1, 3)\n")

	r, err := calc.Run(calc.OpAdd, a, b)
	require.NoError(t, err)
	require.Equal(t, calc.OpAdd, r.Op)
	require.Equal(t, calc.OperandInfo{Rows: 2, Cols: 2, NNZ: 2}, r.A)
	require.Equal(t, calc.OperandInfo{Rows: 2, Cols: 2, NNZ: 1}, r.B)
	require.Equal(t, 3, r.Matrix.NNZ())
	require.False(t, r.Timestamp.IsZero())

	_, err = calc.Run(calc.OpAdd, nil, b)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestOperandInfo_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2x3(5)", calc.OperandInfo{Rows: 2, Cols: 3, NNZ: 5}.String())
}
