// Package sparse_test contains unit tests for the coordinate text codec:
// header handling, strict entry syntax, the tolerant out-of-bounds skip
// policy and the round-trip law.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/sparse"
)

func TestParse_Basic(t *testing.T) {
	t.Parallel()

	m, err := sparse.Parse("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n")
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, []sparse.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 2},
	}, m.Entries())
}

func TestParse_WhitespaceAndBlankLines(t *testing.T) {
	t.Parallel()

	text := "\n  rows=3  \n\ncols=3\n\n  ( 0 ,  1 ,  2.5 )  \n\n(2,2,-4)\n"
	m, err := sparse.Parse(text)
	require.NoError(t, err)
	require.Equal(t, []sparse.Entry{
		{Row: 0, Col: 1, Value: 2.5},
		{Row: 2, Col: 2, Value: -4},
	}, m.Entries())
}

func TestParse_HeaderErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name, text string
	}{
		{"empty input", ""},
		{"missing both headers", "(0, 0, 1)\n"},
		{"cols before rows", "cols=2\nrows=2\n"},
		{"rows only", "rows=2\n"},
		{"non-integer rows", "rows=two\ncols=2\n"},
		{"negative rows", "rows=-1\ncols=2\n"},
		{"negative cols", "rows=2\ncols=-3\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := sparse.Parse(tc.text)
			require.ErrorIs(t, err, sparse.ErrBadFormat)
			require.Nil(t, m, "no partial matrix on format failure")
		})
	}
}

func TestParse_EntrySyntaxErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name, entry string
	}{
		{"missing value field", "(1,1)"},
		{"extra field", "(1, 1, 2, 3)"},
		{"no parentheses", "1, 1, 2"},
		{"unclosed", "(1, 1, 2"},
		{"non-integer row", "(1.5, 1, 2)"},
		{"non-integer col", "(1, x, 2)"},
		{"non-numeric value", "(1, 1, abc)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.Parse("rows=2\ncols=2\n" + tc.entry + "\n")
			require.ErrorIs(t, err, sparse.ErrBadFormat)
		})
	}
}

func TestParse_OutOfBoundsTolerated(t *testing.T) {
	t.Parallel()

	// A syntactically valid entry outside the declared shape is dropped,
	// not an error — the matrix parses to empty.
	m, stats, err := sparse.ParseWithStats("rows=2\ncols=2\n(5, 5, 9)\n")
	require.NoError(t, err)
	require.Zero(t, m.NNZ())
	require.Equal(t, 1, stats.Entries)
	require.Equal(t, 1, stats.Skipped)

	// Negative indices fall under the same policy.
	m, stats, err = sparse.ParseWithStats("rows=2\ncols=2\n(-1, 0, 3)\n(0, 0, 4)\n")
	require.NoError(t, err)
	require.Equal(t, 1, m.NNZ())
	require.Equal(t, 2, stats.Entries)
	require.Equal(t, 1, stats.Skipped)
}

func TestParse_ZeroValuesNotStored(t *testing.T) {
	t.Parallel()

	m, err := sparse.Parse("rows=2\ncols=2\n(0, 0, 0)\n(1, 1, 0.0)\n")
	require.NoError(t, err)
	require.Zero(t, m.NNZ())
}

func TestParse_DuplicateLastWriteWins(t *testing.T) {
	t.Parallel()

	m, err := sparse.Parse("rows=2\ncols=2\n(0, 0, 1)\n(0, 0, 7)\n")
	require.NoError(t, err)
	require.Equal(t, []sparse.Entry{{Row: 0, Col: 0, Value: 7}}, m.Entries())

	// A later zero erases the earlier nonzero.
	m, err = sparse.Parse("rows=2\ncols=2\n(0, 0, 1)\n(0, 0, 0)\n")
	require.NoError(t, err)
	require.Zero(t, m.NNZ())
}

func TestParse_ZeroDimensionHeader(t *testing.T) {
	t.Parallel()

	// rows=0 is a legal shape; every entry is necessarily out of bounds.
	m, stats, err := sparse.ParseWithStats("rows=0\ncols=3\n(0, 0, 1)\n")
	require.NoError(t, err)
	require.Zero(t, m.NNZ())
	require.Equal(t, 1, stats.Skipped)
}

func TestFormat_Shape(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 3,
		sparse.Entry{Row: 1, Col: 2, Value: -4.5},
		sparse.Entry{Row: 0, Col: 1, Value: 3},
	)

	text, err := sparse.Format(m)
	require.NoError(t, err)
	require.Equal(t, "rows=2\ncols=3\n(0, 1, 3)\n(1, 2, -4.5)\n", text)

	_, err = sparse.Format(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestRoundTrip_ParseFormat(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		m    *sparse.Matrix
	}{
		{"empty", mustMatrix(t, 4, 4)},
		{"diag", mustMatrix(t, 2, 2,
			sparse.Entry{Row: 0, Col: 0, Value: 1},
			sparse.Entry{Row: 1, Col: 1, Value: 2},
		)},
		{"awkward floats", mustMatrix(t, 3, 3,
			sparse.Entry{Row: 0, Col: 0, Value: 0.1},
			sparse.Entry{Row: 1, Col: 2, Value: 1.0 / 3.0},
			sparse.Entry{Row: 2, Col: 2, Value: -1e-12},
		)},
		{"zero rows", mustMatrix(t, 0, 7)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			text, err := sparse.Format(tc.m)
			require.NoError(t, err)
			back, err := sparse.Parse(text)
			require.NoError(t, err)
			require.True(t, back.Equal(tc.m), "round trip must reconstruct the matrix")
		})
	}
}

func TestRoundTrip_OperationResult(t *testing.T) {
	t.Parallel()

	// The formatter's inverse relationship to the parser, end to end:
	// parse two operands, multiply, format, re-parse, compare.
	a, err := sparse.Parse("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n")
	require.NoError(t, err)
	b, err := sparse.Parse("rows=2\ncols=2\n(0, 1, 3)\n(1, 0, 4)\n")
	require.NoError(t, err)

	prod, err := sparse.Mul(a, b)
	require.NoError(t, err)

	text, err := sparse.Format(prod)
	require.NoError(t, err)
	back, err := sparse.Parse(text)
	require.NoError(t, err)
	require.True(t, back.Equal(prod))
}
