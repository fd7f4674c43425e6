package fdm

import (
	"fmt"

	"github.com/katalvlaran/bvp/tridiag"
)

// Assemble builds the grid and the interior tridiagonal system without solving it.
//
// Algorithm Outline:
//  1. x = Grid(a, b, h); m = n − 2 interior unknowns.
//  2. For row k (grid index i = k+1):
//     Main[k]  = 2 + q(x_i)·h²
//     Sub[k]   = −p(x_i)·h/2 − 1   (k ≥ 1)
//     Super[k] = p(x_i)·h/2 − 1    (k ≤ m−2)
//     RHS[k]   = −f(x_i)·h²
//  3. Boundary terms: RHS[0] += (p(x_1)·h/2 + 1)·y0,
//     RHS[m−1] += (−p(x_{n−2})·h/2 + 1)·yn.
//
// Each coefficient function is evaluated once per interior node.
//
// Errors:
//   - ErrNilFunc         — p, q or f is nil.
//   - ErrInvalidInterval — see GridLen.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func Assemble(p, q, f Func, h, a, b, y0, yn float64) ([]float64, tridiag.System, error) {
	if p == nil || q == nil || f == nil {
		return nil, tridiag.System{}, fmt.Errorf("Assemble: %w", ErrNilFunc)
	}
	x, err := Grid(a, b, h)
	if err != nil {
		return nil, tridiag.System{}, fmt.Errorf("Assemble: %w", err)
	}

	n := len(x)
	m := n - 2
	sys, err := tridiag.NewSystem(m)
	if err != nil {
		return nil, tridiag.System{}, fmt.Errorf("Assemble: %w", err)
	}

	h2 := h * h
	half := h / 2
	var pi float64
	for k := 0; k < m; k++ {
		xi := x[k+1]
		pi = p(xi)
		sys.Main[k] = 2 + q(xi)*h2
		if k > 0 {
			sys.Sub[k] = -pi*half - 1
		}
		if k < m-1 {
			sys.Super[k] = pi*half - 1
		}
		sys.RHS[k] = -f(xi) * h2

		// Boundary neighbours y[0] and y[n-1] move to the right-hand side.
		if k == 0 {
			sys.RHS[k] += (pi*half + 1) * y0
		}
		if k == m-1 {
			sys.RHS[k] += (-pi*half + 1) * yn
		}
	}

	return x, sys, nil
}

// Solve computes the finite-difference approximation of the boundary value
// problem described in the package documentation.
//
// Returns x (the half-open grid) and y with len(y) == len(x),
// y[0] == y0 and y[n−1] == yn exactly.
//
// Errors:
//   - ErrNilFunc, ErrInvalidInterval — from Assemble.
//   - tridiag.ErrSingularSystem, tridiag.ErrDimensionMismatch — from the
//     solver, wrapped; match them with errors.Is.
//
// Example:
//
//	p := func(x float64) float64 { return -1 / x }
//	q := func(x float64) float64 { return 1/(4*x*x) - 1 }
//	x, y, err := fdm.Solve(p, q, fdm.Constant(0), 0.01, 1, 6, 1, 0)
func Solve(p, q, f Func, h, a, b, y0, yn float64) (x, y []float64, err error) {
	x, sys, err := Assemble(p, q, f, h, a, b, y0, yn)
	if err != nil {
		return nil, nil, err
	}

	interior, err := sys.Solve()
	if err != nil {
		return nil, nil, fmt.Errorf("Solve: %w", err)
	}

	y = make([]float64, 0, len(x))
	y = append(y, y0)
	y = append(y, interior...)
	y = append(y, yn)

	return x, y, nil
}
