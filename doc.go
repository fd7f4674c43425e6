// Package bvp is a small toolkit for linear second-order two-point boundary
// value problems, from the tridiagonal direct solver up to a command-line
// convergence study.
//
// 🚀 What is bvp?
//
//	A pure-Go numeric stack that brings together:
//		• Tridiagonal systems: Thomas algorithm in O(m), residuals, dense views
//		• Finite differences: uniform grid, centered-difference assembly, Dirichlet ends
//		• Convergence studies: concurrent solves over several steps, max-norm error, observed order
//		• Dense reference: row-major Dense, Doolittle LU and Solve for cross-checking
//		• Sample problems: Bessel-type, harmonic and Poisson problems with exact solutions
//		• Export: CSV and MessagePack curves for plotting
//
// ✨ Why choose bvp?
//
//   - Small API – one call from coefficient functions to (x, y)
//   - Explicit failures – sentinel errors for every invalid input, pivot index on breakdown
//   - No shared state – every solve allocates its own buffers, safe to run in parallel
//
// Everything is organized under a handful of subpackages:
//
//	matrix/   — dense matrices, validators, MatVec, LU and Solve
//	tridiag/  — Thomas solver and the System type
//	fdm/      — grid, assembly, Solve and Study
//	problems/ — catalog of problems with exact solutions
//	export/   — CSV / MessagePack writers
//	cmd/bvp/  — CLI: init, solve, study, problems
//
// Quick ASCII example of the interior system for n = 5 grid points:
//
//	[ b1 c1  .  . ] [y1]   [d1 - a1·y0]
//	[ a2 b2 c2  . ] [y2] = [d2        ]
//	[  . a3 b3 c3 ] [y3]   [d3 - c3·yn]
//
//	go get github.com/katalvlaran/bvp/fdm
package bvp
