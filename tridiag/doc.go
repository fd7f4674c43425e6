// Package tridiag solves tridiagonal linear systems A·z = d with the Thomas
// algorithm (forward elimination + back substitution).
//
// 🚀 What is the Thomas algorithm?
//
//	A specialised Gaussian elimination for matrices whose only non-zero
//	entries sit on the main diagonal and its two neighbours. Instead of
//	O(m³) time and O(m²) memory it needs O(m) of both. Typical sources:
//	  • finite-difference discretisations of 1-D boundary value problems
//	  • cubic spline interpolation
//	  • implicit time stepping of 1-D diffusion
//
// ✨ Key features:
//   - pure function of its inputs; caller slices are never mutated
//   - exact zero pivots reported with the failing row (PivotError)
//   - System value type with residual checks and dense round-trips
//   - FromMatrix accepts a full square matrix and extracts the diagonals
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bvp/tridiag"
//
//	z, err := tridiag.Solve(sub, main, super, rhs)
//	if errors.Is(err, tridiag.ErrSingularSystem) {
//	  // input was not diagonally dominant enough for a pivot-free sweep
//	}
//
// Conventions:
//
//	All four slices have length m. sub[i] multiplies z[i-1] and super[i]
//	multiplies z[i+1] in row i, so sub[0] and super[m-1] are never read.
//
// No partial pivoting is performed. Callers must supply systems that are
// diagonally dominant or otherwise solvable without row exchanges.
//
// Performance:
//
//   - Time:   O(m)
//   - Memory: O(m) (two private working arrays plus the result)
package tridiag
