// SPDX-License-Identifier: MIT

package calc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/sparse"
)

// maxSampleEntries caps how many result entries a summary embeds; the full
// matrix lives in the coordinate-text result file, the summary is a digest.
const maxSampleEntries = 5

// OperationInfo identifies one run: when, what, and on which input files.
type OperationInfo struct {
	Timestamp     string     `json:"timestamp" yaml:"timestamp"`
	OperationType string     `json:"operation_type" yaml:"operation_type"`
	InputFiles    InputFiles `json:"input_files" yaml:"input_files"`
}

// InputFiles records the operand file names (base names only — summaries
// travel, absolute paths do not).
type InputFiles struct {
	MatrixA string `json:"matrix_a" yaml:"matrix_a"`
	MatrixB string `json:"matrix_b" yaml:"matrix_b"`
}

// ResultInfo digests the result matrix: shape, sparsity and a few leading
// entries in row-major order.
type ResultInfo struct {
	Rows          int            `json:"rows" yaml:"rows"`
	Cols          int            `json:"cols" yaml:"cols"`
	NNZ           int            `json:"non_zero_elements" yaml:"non_zero_elements"`
	SampleEntries []sparse.Entry `json:"sample_entries" yaml:"sample_entries"`
}

// Summary is the JSON digest written beside every saved result.
type Summary struct {
	Operation OperationInfo `json:"operation_info" yaml:"operation_info"`
	MatrixA   OperandInfo   `json:"matrix_a" yaml:"matrix_a"`
	MatrixB   OperandInfo   `json:"matrix_b" yaml:"matrix_b"`
	Result    ResultInfo    `json:"result" yaml:"result"`
	ElapsedMS float64       `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// NewSummary digests one completed run.
func NewSummary(r *Result, fileA, fileB string) Summary {
	entries := r.Matrix.Entries()
	if len(entries) > maxSampleEntries {
		entries = entries[:maxSampleEntries]
	}
	info := infoOf(r.Matrix)

	return Summary{
		Operation: OperationInfo{
			Timestamp:     r.Timestamp.Format(time.RFC3339),
			OperationType: r.Op.String(),
			InputFiles: InputFiles{
				MatrixA: filepath.Base(fileA),
				MatrixB: filepath.Base(fileB),
			},
		},
		MatrixA: r.A,
		MatrixB: r.B,
		Result: ResultInfo{
			Rows:          info.Rows,
			Cols:          info.Cols,
			NNZ:           info.NNZ,
			SampleEntries: entries,
		},
		ElapsedMS: float64(r.Elapsed.Microseconds()) / 1e3,
	}
}

// WriteSummary writes s as indented JSON to path.
func WriteSummary(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
