// Package fdm solves linear second-order two-point boundary value problems
// with Dirichlet data by the finite difference method.
//
// 🚀 What does it solve?
//
//	Given coefficient functions p, q, f on [a, b], a step h and boundary
//	values y(a) = y0, y(b) = yn, fdm samples a half-open grid
//	x_i = a + i·h (i = 0..n-1, n = ⌈(b−a)/h⌉), replaces derivatives by
//	centered differences and solves the resulting tridiagonal system for
//	the n−2 interior values with the Thomas algorithm (package tridiag).
//
// Stencil (interior node i, rows scaled by −h²):
//
//	(−p_i·h/2 − 1)·y[i−1] + (2 + q_i·h²)·y[i] + (p_i·h/2 − 1)·y[i+1] = −f_i·h²
//
//	which is the centered-difference form of y'' − p·y' − q·y = f.
//	Boundary neighbours are moved to the right-hand side.
//
// ✨ Key features:
//   - O(n) time and memory per solve
//   - stateless: safe for concurrent independent calls
//   - Assemble exposes the grid and system without solving
//   - Study runs several step sizes in parallel and reports max-norm
//     errors against an exact solution plus the observed order
//
// ⚙️ Usage:
//
//	x, y, err := fdm.Solve(p, q, f, 0.01, 1, 6, 1, 0)
//
// Grid quirk:
//
//	The grid covers the half-open interval [a, b): b itself is never a
//	grid point. y[n−1] = yn is attached at x[n−1] = a + (n−1)·h < b.
package fdm
