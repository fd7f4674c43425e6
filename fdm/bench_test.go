package fdm_test

import "testing"

// benchmarkSolve runs the Bessel sample at step h.
func benchmarkSolve(b *testing.B, h float64) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := bessel.Solve(h); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_H1e2 benchmarks n = 500.
func BenchmarkSolve_H1e2(b *testing.B) { benchmarkSolve(b, 1e-2) }

// BenchmarkSolve_H1e4 benchmarks n = 50 000.
func BenchmarkSolve_H1e4(b *testing.B) { benchmarkSolve(b, 1e-4) }
