// SPDX-License-Identifier: MIT

// Package sparse - coordinate text codec.
//
// Purpose:
//   - Parse the "rows=/cols=/(row, col, value)" text shape into a Matrix and
//     render a Matrix back into the identical shape (round-trip law:
//     Parse(Format(m)) equals m for any valid m).
//   - Enforce the tolerant/strict asymmetry: syntactically broken input is a
//     hard ErrBadFormat, while well-formed entries whose indices fall outside
//     the declared bounds are silently dropped (counted, not surfaced).
//
// Format (bit-exact):
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(<int>, <int>, <number>)
//	...
//
// Whitespace around tokens inside the parentheses is ignored; blank lines
// anywhere are ignored; the two header lines must come first, rows before
// cols.

package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Header prefixes and entry delimiters of the coordinate text shape.
const (
	headerRows  = "rows="
	headerCols  = "cols="
	entryOpen   = "("
	entryClose  = ")"
	entrySep    = ","
	entryFields = 3 // row, col, value
)

// ParseStats reports what a tolerant parse actually did. Skipped counts
// well-formed entries dropped for being out of the declared bounds — the
// original calculator printed these as warnings; a library returns them.
type ParseStats struct {
	// Entries is the number of syntactically valid entry lines seen.
	Entries int
	// Skipped is how many of those were dropped as out-of-bounds.
	Skipped int
}

// parseErrorf tags a format failure with its 1-based line number, keeping
// ErrBadFormat (or a stricter sentinel from Set) matchable via errors.Is.
func parseErrorf(lineNo int, line string, err error) error {
	return fmt.Errorf("parse line %d %q: %w", lineNo, line, err)
}

// Parse converts coordinate text into a validated Matrix.
// Thin alias of ParseWithStats for callers that do not care how many
// out-of-bounds entries were dropped.
func Parse(text string, opts ...Option) (*Matrix, error) {
	m, _, err := ParseWithStats(text, opts...)

	return m, err
}

// ParseWithStats converts coordinate text into a validated Matrix and
// reports the tolerant-skip statistics.
//
// Implementation:
//   - Stage 1 (Header): the first two non-blank lines must be "rows=<n>"
//     and "cols=<n>" in that order; a missing, malformed or negative header
//     is ErrBadFormat — no partial matrix is ever returned.
//   - Stage 2 (Entries): every further non-blank line must match the
//     parenthesized triple "(row, col, value)" with integer indices and a
//     numeric value; anything else is ErrBadFormat.
//   - Stage 3 (Policy): an entry whose indices fall outside
//     [0, rows) × [0, cols) is counted in Skipped and dropped — explicitly
//     NOT an error. Zero values are dropped by Set (zeros are never
//     stored). Duplicate positions: the later line overwrites the earlier
//     (last-write-wins).
//
// Complexity: O(lines) time, O(nnz) memory.
func ParseWithStats(text string, opts ...Option) (*Matrix, ParseStats, error) {
	var stats ParseStats

	rows, cols := -1, -1
	seenRows, seenCols := false, false
	var m *Matrix

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Header stage: rows first, then cols.
		if !seenRows {
			n, err := parseHeader(line, headerRows)
			if err != nil {
				return nil, stats, parseErrorf(lineNo, line, err)
			}
			rows, seenRows = n, true
			continue
		}
		if !seenCols {
			n, err := parseHeader(line, headerCols)
			if err != nil {
				return nil, stats, parseErrorf(lineNo, line, err)
			}
			cols, seenCols = n, true

			var err2 error
			if m, err2 = New(rows, cols, opts...); err2 != nil {
				return nil, stats, parseErrorf(lineNo, line, err2)
			}
			continue
		}

		// Entry stage: strict syntax, tolerant bounds.
		row, col, v, err := parseEntry(line)
		if err != nil {
			return nil, stats, parseErrorf(lineNo, line, err)
		}
		stats.Entries++
		if !m.inBounds(row, col) {
			stats.Skipped++
			continue
		}
		if err = m.Set(row, col, v); err != nil {
			// In-bounds Set can only fail on numeric policy (NaN/Inf value).
			return nil, stats, parseErrorf(lineNo, line, err)
		}
	}

	if !seenRows || !seenCols {
		return nil, stats, fmt.Errorf("missing rows=/cols= header: %w", ErrBadFormat)
	}

	return m, stats, nil
}

// parseHeader extracts the non-negative integer of one "prefix<n>" header
// line. Negative or non-integer dimensions are ErrBadFormat.
func parseHeader(line, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return 0, fmt.Errorf("expected %q header: %w", prefix, ErrBadFormat)
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, fmt.Errorf("header value %q: %w", rest, ErrBadFormat)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative dimension %d: %w", n, ErrBadFormat)
	}

	return n, nil
}

// parseEntry parses one "(row, col, value)" line. Exactly three
// comma-separated fields inside one pair of parentheses; indices must be
// integers, the value any float syntax strconv accepts.
func parseEntry(line string) (row, col int, v float64, err error) {
	if !strings.HasPrefix(line, entryOpen) || !strings.HasSuffix(line, entryClose) {
		return 0, 0, 0, fmt.Errorf("entry must be parenthesized: %w", ErrBadFormat)
	}
	inner := line[len(entryOpen) : len(line)-len(entryClose)]
	fields := strings.Split(inner, entrySep)
	if len(fields) != entryFields {
		return 0, 0, 0, fmt.Errorf("expected %d fields, got %d: %w", entryFields, len(fields), ErrBadFormat)
	}

	if row, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, 0, fmt.Errorf("row %q: %w", fields[0], ErrBadFormat)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, 0, fmt.Errorf("col %q: %w", fields[1], ErrBadFormat)
	}
	if v, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err != nil {
		return 0, 0, 0, fmt.Errorf("value %q: %w", fields[2], ErrBadFormat)
	}

	return row, col, v, nil
}

// Format renders m into the same coordinate text shape Parse accepts: a
// rows= line, a cols= line, then one "(row, col, value)" line per nonzero
// entry in deterministic row-major order. Values are rendered with the
// shortest representation that survives a float64 round trip, so
// Parse(Format(m)) reconstructs m exactly.
// Complexity: O(nnz·log nnz).
func Format(m *Matrix) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%d\n%s%d\n", headerRows, m.rows, headerCols, m.cols)
	m.Do(func(row, col int, v float64) bool {
		fmt.Fprintf(&b, "(%d, %d, %s)\n", row, col, strconv.FormatFloat(v, 'g', -1, 64))

		return true
	})

	return b.String(), nil
}
