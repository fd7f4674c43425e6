package fdm

import "errors"

var (
	// ErrInvalidInterval indicates a bad (a, b, h) combination: non-finite
	// values, h ≤ 0, b ≤ a, or fewer than MinGridPoints grid points.
	ErrInvalidInterval = errors.New("fdm: invalid interval or step")

	// ErrNilFunc indicates that p, q or f is nil.
	ErrNilFunc = errors.New("fdm: nil coefficient function")

	// ErrInvalidStudy indicates an empty step list or a missing exact solution.
	ErrInvalidStudy = errors.New("fdm: invalid convergence study")
)
