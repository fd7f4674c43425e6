package fdm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bvp/fdm"
	"github.com/katalvlaran/bvp/tridiag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bessel-type sample on [1, 6]: y(1) = 1, y(6) = 0,
// exact y(x) = sin(6−x) / (sin(5)·√x).
var (
	besselP     fdm.Func = func(x float64) float64 { return -1 / x }
	besselQ     fdm.Func = func(x float64) float64 { return 1/(4*x*x) - 1 }
	besselExact fdm.Func = func(x float64) float64 { return math.Sin(6-x) / (math.Sin(5) * math.Sqrt(x)) }
	bessel               = fdm.Problem{P: besselP, Q: besselQ, F: fdm.Constant(0), A: 1, B: 6, Y0: 1, YN: 0}
)

func maxError(x, y []float64, exact fdm.Func) float64 {
	e := 0.0
	for i := range x {
		e = math.Max(e, math.Abs(y[i]-exact(x[i])))
	}

	return e
}

// TestSolve_BesselConvergence: shrinking h from 0.1 to 0.001 shrinks the max-norm error.
func TestSolve_BesselConvergence(t *testing.T) {
	prev := math.Inf(1)
	for _, h := range []float64{0.1, 0.05, 0.01, 0.005, 0.001} {
		x, y, err := bessel.Solve(h)
		require.NoError(t, err, "h=%g", h)

		e := maxError(x, y, besselExact)
		assert.Less(t, e, prev, "error must decrease at h=%g", h)
		prev = e
	}
	assert.Less(t, prev, 1e-3, "h=0.001 should be accurate to ~7e-4")
}

// TestSolve_BoundaryPreserved: the end values are copied, not computed.
func TestSolve_BoundaryPreserved(t *testing.T) {
	for _, tc := range []struct{ y0, yn float64 }{{1, 0}, {-3.75, 1e-17}, {0.1, 0.2}} {
		x, y, err := fdm.Solve(besselP, besselQ, fdm.Constant(0.5), 0.05, 1, 6, tc.y0, tc.yn)
		require.NoError(t, err)
		require.Equal(t, len(x), len(y))
		assert.Equal(t, tc.y0, y[0])
		assert.Equal(t, tc.yn, y[len(y)-1])
	}
}

// TestSolve_GridConsistency: equal lengths, strictly increasing, constant spacing h.
func TestSolve_GridConsistency(t *testing.T) {
	const h = 0.01
	x, y, err := bessel.Solve(h)
	require.NoError(t, err)
	require.Len(t, x, 500)
	require.Len(t, y, 500)

	assert.Equal(t, 1.0, x[0])
	assert.Less(t, x[len(x)-1], 6.0, "b is excluded from the half-open grid")
	for i := 1; i < len(x); i++ {
		require.Greater(t, x[i], x[i-1])
		assert.InDelta(t, h, x[i]-x[i-1], 1e-12, "spacing at %d", i)
	}
}

// TestSolve_LinearSolution: with p = q = f = 0 the discrete solution is linear in i.
func TestSolve_LinearSolution(t *testing.T) {
	zero := fdm.Constant(0)
	x, y, err := fdm.Solve(zero, zero, zero, 0.1, 0, 1, 0, 9)
	require.NoError(t, err)
	require.Len(t, x, 10)

	for i := range y {
		assert.InDelta(t, float64(i), y[i], 1e-12, "y[%d]", i)
	}
}

// TestSolve_QuadraticExact: centered differences are exact for y = x(L−x).
func TestSolve_QuadraticExact(t *testing.T) {
	zero := fdm.Constant(0)
	x, y, err := fdm.Solve(zero, zero, fdm.Constant(-2), 0.125, 0, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, x, 8)

	last := x[len(x)-1] // 0.875: the Dirichlet value yn sits here
	for i := range x {
		assert.InDelta(t, x[i]*(last-x[i]), y[i], 1e-12, "y[%d]", i)
	}
}

// TestSolve_SmallestSystem covers n = 3 (one interior unknown).
func TestSolve_SmallestSystem(t *testing.T) {
	zero := fdm.Constant(0)
	x, y, err := fdm.Solve(zero, zero, zero, 1, 0, 3, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, x)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, y, 1e-15)
}

// TestSolve_InvalidInterval covers every way to request a degenerate grid.
func TestSolve_InvalidInterval(t *testing.T) {
	zero := fdm.Constant(0)
	cases := map[string][3]float64{ // h, a, b
		"two points":    {0.5, 0, 1},
		"zero step":     {0, 0, 1},
		"negative step": {-0.1, 0, 1},
		"reversed":      {0.1, 1, 0},
		"empty":         {0.1, 1, 1},
		"nan":           {math.NaN(), 0, 1},
		"inf bound":     {0.1, 0, math.Inf(1)},
		"huge grid":     {1e-300, 0, 1},
	}
	for name, c := range cases {
		x, y, err := fdm.Solve(zero, zero, zero, c[0], c[1], c[2], 0, 0)
		assert.ErrorIs(t, err, fdm.ErrInvalidInterval, name)
		assert.Nil(t, x, name)
		assert.Nil(t, y, name)
	}
}

// TestSolve_NilFunc ensures nil coefficients are reported before any work.
func TestSolve_NilFunc(t *testing.T) {
	_, _, err := fdm.Solve(nil, fdm.Constant(0), fdm.Constant(0), 0.1, 0, 1, 0, 0)
	assert.ErrorIs(t, err, fdm.ErrNilFunc)
}

// TestSolve_SingularPropagates: 2 + q·h² = 0 with one unknown gives a zero pivot.
func TestSolve_SingularPropagates(t *testing.T) {
	_, _, err := fdm.Solve(fdm.Constant(0), fdm.Constant(-2), fdm.Constant(0), 1, 0, 3, 1, 1)
	assert.ErrorIs(t, err, tridiag.ErrSingularSystem)
}

// TestAssemble_Coefficients checks every entry of a hand-computed 2-unknown system.
func TestAssemble_Coefficients(t *testing.T) {
	x, sys, err := fdm.Assemble(fdm.Constant(2), fdm.Constant(3), fdm.Constant(4), 0.5, 0, 2, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, x)
	assert.Equal(t, []float64{2.75, 2.75}, sys.Main)
	assert.Equal(t, []float64{0, -1.5}, sys.Sub)
	assert.Equal(t, []float64{-0.5, 0}, sys.Super)
	// −f·h² = −1; boundary terms (1.5)·2 and (0.5)·4
	assert.Equal(t, []float64{2, 1}, sys.RHS)
}

// TestAssemble_VariableCoefficients: p is sampled at the row's own node.
func TestAssemble_VariableCoefficients(t *testing.T) {
	id := fdm.Func(func(x float64) float64 { return x })
	_, sys, err := fdm.Assemble(id, fdm.Constant(0), fdm.Constant(0), 1, 0, 5, 1, 1)
	require.NoError(t, err)

	// interior nodes x = 1, 2, 3
	assert.Equal(t, []float64{0, -2, -2.5}, sys.Sub)
	assert.Equal(t, []float64{-0.5, 0, 0}, sys.Super)
	assert.Equal(t, []float64{1.5, 0, -0.5}, sys.RHS)
}

// TestProblem_SolveMatchesSolve: the convenience wrapper forwards unchanged.
func TestProblem_SolveMatchesSolve(t *testing.T) {
	x1, y1, err := bessel.Solve(0.1)
	require.NoError(t, err)
	x2, y2, err := fdm.Solve(besselP, besselQ, fdm.Constant(0), 0.1, 1, 6, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}
