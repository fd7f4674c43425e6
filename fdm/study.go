package fdm

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// StudyResult is the outcome of one step size in a convergence study.
type StudyResult struct {
	Step     float64   // h
	X, Y     []float64 // grid and approximate solution
	MaxError float64   // max_i |y_i − exact(x_i)|
	// Order is log(e_prev/e)/log(h_prev/h) against the previous entry of the
	// study; NaN for the first entry or when either error is zero.
	Order float64
}

// Study solves pr for every step in steps and measures the max-norm error
// against exact on each grid.
//
// Steps are solved concurrently, one goroutine per step; results keep the
// order of steps. The first failure cancels the remaining solves and is
// returned.
//
// Errors:
//   - ErrInvalidStudy — empty steps or nil exact.
//   - any error of Solve, wrapped with the failing step.
//   - ctx.Err() when ctx is cancelled before a solve starts.
func Study(ctx context.Context, pr Problem, exact Func, steps []float64) ([]StudyResult, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("Study: no step sizes: %w", ErrInvalidStudy)
	}
	if exact == nil {
		return nil, fmt.Errorf("Study: nil exact solution: %w", ErrInvalidStudy)
	}

	results := make([]StudyResult, len(steps))
	g, ctx := errgroup.WithContext(ctx)
	for i, h := range steps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x, y, err := pr.Solve(h)
			if err != nil {
				return fmt.Errorf("Study: h=%g: %w", h, err)
			}
			ref := make([]float64, len(x))
			for j, xj := range x {
				ref[j] = exact(xj)
			}
			results[i] = StudyResult{
				Step:     h,
				X:        x,
				Y:        y,
				MaxError: floats.Distance(y, ref, math.Inf(1)),
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results[0].Order = math.NaN()
	for i := 1; i < len(results); i++ {
		results[i].Order = observedOrder(results[i-1], results[i])
	}

	return results, nil
}

// observedOrder estimates the convergence order between two study entries.
func observedOrder(prev, cur StudyResult) float64 {
	if prev.MaxError == 0 || cur.MaxError == 0 || prev.Step == cur.Step {
		return math.NaN()
	}

	return math.Log(prev.MaxError/cur.MaxError) / math.Log(prev.Step/cur.Step)
}
