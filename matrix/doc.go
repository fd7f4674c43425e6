// Package matrix offers a small dense linear-algebra layer used alongside the
// tridiagonal solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - MatVec for residual checks (A·z − d).
//   - LU (Doolittle, no pivoting) and Solve, a general O(n³) direct solver
//     used to cross-check the O(n) Thomas sweep on small systems.
//
// Dense matrices cost O(n²) memory. They are meant for verification and for
// accepting tridiagonal systems supplied in full matrix form, not for the
// production solve path.
//
// See the tests in this package and tridiag for usage patterns.
package matrix
