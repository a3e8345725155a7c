// Command sparsecalc is the interactive front end of the sparse matrix
// calculator: pick an operation, pick two coordinate-text matrix files
// from the input folder, and get a timestamped result file plus a JSON
// summary. With -job it instead runs a non-interactive YAML job.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/calc"
	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/sparse"
)

func main() {
	var (
		inputDir = flag.String("dir", "sample_inputs", "folder holding .txt matrix files")
		outDir   = flag.String("out", "results", "folder receiving result files")
		history  = flag.String("history", "", "optional append-only history log path")
		jobFile  = flag.String("job", "", "run a YAML job file instead of the menu")
	)
	flag.Parse()

	if *jobFile != "" {
		if err := runJobFile(*jobFile); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}

		return
	}

	if err := runMenu(*inputDir, *outDir, *history); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runJobFile executes one YAML-configured run and prints its digest.
func runJobFile(path string) error {
	job, err := calc.LoadJob(path)
	if err != nil {
		return err
	}
	r, resultPath, err := calc.RunJob(job)
	if err != nil {
		return err
	}
	printResult(r, resultPath)

	return nil
}

// runMenu drives the interactive flow: operation, two files, run, save.
func runMenu(inputDir, outDir, history string) error {
	fmt.Println("=== Sparse Matrix Calculator ===")
	in := bufio.NewScanner(os.Stdin)

	op, ok := selectOperation(in)
	if !ok {
		return nil
	}

	files, err := calc.ListMatrixFiles(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s matrix files in %s", calc.MatrixFileExt, inputDir)
	}

	fmt.Println("\nSelect first matrix:")
	pathA, ok := selectFile(in, files)
	if !ok {
		return nil
	}
	fmt.Println("\nSelect second matrix:")
	pathB, ok := selectFile(in, files)
	if !ok {
		return nil
	}

	a, err := loadReporting(pathA)
	if err != nil {
		return err
	}
	b, err := loadReporting(pathB)
	if err != nil {
		return err
	}

	r, err := calc.Run(op, a, b)
	if err != nil {
		return err
	}

	resultPath, err := calc.SaveResultText(outDir, r)
	if err != nil {
		return err
	}
	summaryPath := strings.TrimSuffix(resultPath, filepath.Ext(resultPath)) + ".json"
	if err = calc.WriteSummary(summaryPath, calc.NewSummary(r, pathA, pathB)); err != nil {
		return err
	}
	if history != "" {
		if err = calc.AppendHistory(history, r, pathA, pathB); err != nil {
			return err
		}
	}

	printResult(r, resultPath)
	fmt.Println("summary:", summaryPath)

	return nil
}

// selectOperation shows the menu and reads a 1-3 choice; 'q' aborts.
func selectOperation(in *bufio.Scanner) (calc.Op, bool) {
	ops := []calc.Op{calc.OpAdd, calc.OpSub, calc.OpMul}
	for {
		fmt.Println("\nOperations:")
		for i, op := range ops {
			fmt.Printf("%d: %s\n", i+1, op)
		}
		choice, ok := prompt(in, fmt.Sprintf("Select operation (1-%d or 'q'): ", len(ops)))
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(ops) {
			return ops[n-1], true
		}
		fmt.Println("Invalid choice")
	}
}

// selectFile lists files and reads an index choice; 'q' aborts.
func selectFile(in *bufio.Scanner, files []string) (string, bool) {
	for {
		for i, f := range files {
			fmt.Printf("%d: %s\n", i+1, filepath.Base(f))
		}
		choice, ok := prompt(in, fmt.Sprintf("Select (1-%d or 'q'): ", len(files)))
		if !ok {
			return "", false
		}
		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(files) {
			return files[n-1], true
		}
		fmt.Println("Invalid selection")
	}
}

// prompt reads one trimmed line; returns ok=false on 'q' or closed stdin.
func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false
	}
	line := strings.TrimSpace(in.Text())
	if strings.EqualFold(line, "q") {
		return "", false
	}

	return line, true
}

// loadReporting loads one matrix file and warns about dropped entries.
func loadReporting(path string) (*sparse.Matrix, error) {
	m, stats, err := calc.LoadFileWithStats(path)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Shape()
	fmt.Printf("%s: %dx%d with %d non-zero elements\n", filepath.Base(path), rows, cols, m.NNZ())
	if stats.Skipped > 0 {
		fmt.Printf("  warning: %d of %d entries out of bounds, skipped\n", stats.Skipped, stats.Entries)
	}

	return m, nil
}

// printResult prints the run digest the way the menu flow reports it.
func printResult(r *calc.Result, resultPath string) {
	rows, cols := r.Matrix.Shape()
	fmt.Printf("\n%s completed in %s\n", r.Op, r.Elapsed)
	fmt.Printf("result: %dx%d with %d non-zero elements\n", rows, cols, r.Matrix.NNZ())
	fmt.Println("saved to:", resultPath)
}
