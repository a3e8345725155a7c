// SPDX-License-Identifier: MIT

package calc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrBadJob indicates a job config that is syntactically valid YAML but
// semantically unusable (missing inputs, unknown operation).
var ErrBadJob = errors.New("calc: invalid job")

// Job is one non-interactive calculator run, loaded from a YAML file:
//
//	operation: multiply
//	matrix_a: sample_inputs/a.txt
//	matrix_b: sample_inputs/b.txt
//	output_dir: results
//	summary: true
//	history: results/history.log
type Job struct {
	// Operation is the selector string; see ParseOp for accepted spellings.
	Operation string `yaml:"operation"`
	// MatrixA and MatrixB are the operand file paths (coordinate text).
	MatrixA string `yaml:"matrix_a"`
	MatrixB string `yaml:"matrix_b"`
	// OutputDir receives the timestamped result file; "." when empty.
	OutputDir string `yaml:"output_dir"`
	// Summary toggles the JSON digest written beside the result file.
	Summary bool `yaml:"summary"`
	// History, when set, is the append-only log to record the run in.
	History string `yaml:"history"`
}

// LoadJob reads and validates a YAML job file. Unknown YAML fields are
// rejected so a typo in a key fails loudly instead of silently defaulting.
func LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("read job %s: %w", path, err)
	}

	var job Job
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&job); err != nil {
		return Job{}, fmt.Errorf("decode job %s: %w", path, err)
	}
	if err = job.validate(); err != nil {
		return Job{}, fmt.Errorf("job %s: %w", path, err)
	}

	return job, nil
}

// validate checks the semantic minimum: a known operation and two operand
// paths. File existence is checked by RunJob when it actually loads them.
func (j Job) validate() error {
	if _, err := ParseOp(j.Operation); err != nil {
		return fmt.Errorf("%w: %w", ErrBadJob, err)
	}
	if j.MatrixA == "" {
		return fmt.Errorf("%w: matrix_a is required", ErrBadJob)
	}
	if j.MatrixB == "" {
		return fmt.Errorf("%w: matrix_b is required", ErrBadJob)
	}

	return nil
}

// RunJob executes a validated job end to end: load both operands, run the
// operation, save the result text, then the optional summary and history.
// It returns the run result and the path of the saved result file.
func RunJob(job Job) (*Result, string, error) {
	op, err := ParseOp(job.Operation)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrBadJob, err)
	}

	a, err := LoadFile(job.MatrixA)
	if err != nil {
		return nil, "", err
	}
	b, err := LoadFile(job.MatrixB)
	if err != nil {
		return nil, "", err
	}

	r, err := Run(op, a, b)
	if err != nil {
		return nil, "", err
	}

	outDir := job.OutputDir
	if outDir == "" {
		outDir = "."
	}
	resultPath, err := SaveResultText(outDir, r)
	if err != nil {
		return nil, "", err
	}

	if job.Summary {
		summaryPath := summaryPathFor(resultPath)
		if err = WriteSummary(summaryPath, NewSummary(r, job.MatrixA, job.MatrixB)); err != nil {
			return nil, "", err
		}
	}
	if job.History != "" {
		if err = AppendHistory(job.History, r, job.MatrixA, job.MatrixB); err != nil {
			return nil, "", err
		}
	}

	return r, resultPath, nil
}

// summaryPathFor swaps the result file's extension for .json.
func summaryPathFor(resultPath string) string {
	ext := filepath.Ext(resultPath)

	return resultPath[:len(resultPath)-len(ext)] + ".json"
}
