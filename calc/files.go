// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/sparse"
)

// MatrixFileExt is the extension the calculator treats as matrix input.
const MatrixFileExt = ".txt"

// timestampLayout names result files down to the second; two runs within
// the same second overwrite, which matches the original calculator.
const timestampLayout = "20060102_150405"

// ListMatrixFiles returns the matrix files (by extension) directly inside
// dir, as full paths in lexical order. Subdirectories are not descended
// into. An empty slice with a nil error means the directory exists but
// holds no matrix files.
func ListMatrixFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != MatrixFileExt {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	return files, nil
}

// LoadFile reads and parses one coordinate-text matrix file.
func LoadFile(path string) (*sparse.Matrix, error) {
	m, _, err := LoadFileWithStats(path)

	return m, err
}

// LoadFileWithStats reads and parses one matrix file, reporting how many
// out-of-bounds entries the tolerant parser dropped so callers can warn
// the user (the library itself never prints).
func LoadFileWithStats(path string) (*sparse.Matrix, sparse.ParseStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sparse.ParseStats{}, fmt.Errorf("read %s: %w", path, err)
	}
	m, stats, err := sparse.ParseWithStats(string(data))
	if err != nil {
		return nil, stats, fmt.Errorf("parse %s: %w", path, err)
	}

	return m, stats, nil
}

// ResultFileName builds the timestamped name a saved result gets, e.g.
// "result_multiply_20260825_143015.txt".
func ResultFileName(op Op, at time.Time) string {
	return fmt.Sprintf("result_%s_%s%s", op, at.Format(timestampLayout), MatrixFileExt)
}

// SaveResultText writes r's matrix as coordinate text into dir under a
// timestamped name, creating dir if needed, and returns the full path.
func SaveResultText(dir string, r *Result) (string, error) {
	text, err := sparse.Format(r.Matrix)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	path := filepath.Join(dir, ResultFileName(r.Op, r.Timestamp))
	if err = os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

// AppendHistory appends one line describing r to the running log at path,
// creating the file on first use. One line per run:
//
//	<RFC3339 timestamp> <op> <AxB(nnz)> <AxB(nnz)> -> <AxB(nnz)> a=<file> b=<file>
func AppendHistory(path string, r *Result, fileA, fileB string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history %s: %w", path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s %s %s %s -> %s a=%s b=%s\n",
		r.Timestamp.Format(time.RFC3339), r.Op,
		r.A, r.B, infoOf(r.Matrix),
		filepath.Base(fileA), filepath.Base(fileB),
	)
	if _, err = f.WriteString(line); err != nil {
		return fmt.Errorf("append history %s: %w", path, err)
	}

	return nil
}
