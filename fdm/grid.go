package fdm

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// MinGridPoints is the smallest grid with one interior unknown.
const MinGridPoints = 3

// maxGridPoints caps n so that a tiny h cannot request an absurd allocation.
const maxGridPoints = 1 << 28

// GridLen returns n = ⌈(b−a)/h⌉, the number of points of the half-open grid.
//
// Errors:
//   - ErrInvalidInterval — non-finite inputs, h ≤ 0, b ≤ a,
//     n < MinGridPoints or n beyond the supported size.
func GridLen(a, b, h float64) (int, error) {
	if !finite(a) || !finite(b) || !finite(h) {
		return 0, fmt.Errorf("a=%g b=%g h=%g: non-finite: %w", a, b, h, ErrInvalidInterval)
	}
	if h <= 0 {
		return 0, fmt.Errorf("h=%g: step must be positive: %w", h, ErrInvalidInterval)
	}
	if b <= a {
		return 0, fmt.Errorf("[%g, %g]: need a < b: %w", a, b, ErrInvalidInterval)
	}

	steps := math.Ceil((b - a) / h)
	if steps > maxGridPoints {
		return 0, fmt.Errorf("(b-a)/h=%g: grid too large: %w", steps, ErrInvalidInterval)
	}
	n, err := safecast.Convert[int](steps)
	if err != nil {
		return 0, fmt.Errorf("(b-a)/h=%g: %w: %w", steps, err, ErrInvalidInterval)
	}
	if n < MinGridPoints {
		return 0, fmt.Errorf("[%g, %g) with h=%g gives %d points, need %d: %w",
			a, b, h, n, MinGridPoints, ErrInvalidInterval)
	}

	return n, nil
}

// Grid returns x_i = a + i·h for i = 0..n−1 (half-open: x_{n−1} < b).
// Points are computed from the index, not by accumulation, so spacing error
// does not grow along the grid.
func Grid(a, b, h float64) ([]float64, error) {
	n, err := GridLen(a, b, h)
	if err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = a + float64(i)*h
	}

	return x, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
