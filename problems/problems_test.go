package problems_test

import (
	"testing"

	"github.com/katalvlaran/bvp/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNames lists the catalog in lexical order.
func TestNames(t *testing.T) {
	assert.Equal(t, []string{"bessel-half", "harmonic", "poisson"}, problems.Names())
}

// TestLookupUnknown returns the sentinel for a missing entry.
func TestLookupUnknown(t *testing.T) {
	_, err := problems.Lookup("airy")
	assert.ErrorIs(t, err, problems.ErrUnknownProblem)
}

// TestExactSatisfiesBoundaries: every exact solution honours its own Dirichlet data.
func TestExactSatisfiesBoundaries(t *testing.T) {
	for _, name := range problems.Names() {
		s, err := problems.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
		assert.InDelta(t, s.Problem.Y0, s.Exact(s.Problem.A), 1e-12, name)
		assert.InDelta(t, s.Problem.YN, s.Exact(s.Problem.B), 1e-12, name)
	}
}

// TestSamplesConverge: at h = 1e-3 every sample is within 1e-2 of its exact solution.
func TestSamplesConverge(t *testing.T) {
	for _, name := range problems.Names() {
		s, err := problems.Lookup(name)
		require.NoError(t, err)

		x, y, err := s.Problem.Solve(1e-3)
		require.NoError(t, err, name)
		for i := range x {
			assert.InDelta(t, s.Exact(x[i]), y[i], 1e-2, "%s at x=%g", name, x[i])
		}
	}
}

// TestWithBounds replaces interval and boundary data only.
func TestWithBounds(t *testing.T) {
	s, err := problems.Lookup("poisson")
	require.NoError(t, err)

	w := s.WithBounds(0, 2, 1, 3)
	assert.Equal(t, 2.0, w.Problem.B)
	assert.Equal(t, 1.0, w.Problem.Y0)
	assert.Equal(t, 1.0, s.Problem.B, "original entry untouched")
}
