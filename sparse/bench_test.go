package sparse_test

import (
	"testing"

	"github.com/Elvin100s/DSA-HW01---Sparse-Matrix/sparse"
)

// benchMatrix fills an n×n matrix with a fixed pseudo-pattern of nnz
// entries. Deterministic by construction: no randomness, stable layout.
func benchMatrix(b *testing.B, n, nnz, stride int) *sparse.Matrix {
	b.Helper()
	m, err := sparse.New(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < nnz; i++ {
		pos := (i * stride) % (n * n)
		if err = m.Set(pos/n, pos%n, float64(i%7+1)); err != nil {
			b.Fatal(err)
		}
	}

	return m
}

func BenchmarkAdd_1000x1000_nnz5000(b *testing.B) {
	x := benchMatrix(b, 1000, 5000, 7919)
	y := benchMatrix(b, 1000, 5000, 104729)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Add(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul_1000x1000_nnz5000(b *testing.B) {
	x := benchMatrix(b, 1000, 5000, 7919)
	y := benchMatrix(b, 1000, 5000, 104729)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Mul(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_5000Entries(b *testing.B) {
	m := benchMatrix(b, 1000, 5000, 7919)
	text, err := sparse.Format(m)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sparse.Parse(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormat_5000Entries(b *testing.B) {
	m := benchMatrix(b, 1000, 5000, 7919)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Format(m); err != nil {
			b.Fatal(err)
		}
	}
}
