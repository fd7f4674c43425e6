package tridiag

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bvp/matrix"
	"gonum.org/v1/gonum/floats"
)

// System holds a tridiagonal system in diagonal form.
//
// Fields (all of length m):
//   - Sub   — coefficient of z[i-1] in row i; Sub[0] is ignored.
//   - Main  — coefficient of z[i].
//   - Super — coefficient of z[i+1] in row i; Super[m-1] is ignored.
//   - RHS   — right-hand side d.
//
// A System is a plain value: methods never modify its slices.
type System struct {
	Sub   []float64
	Main  []float64
	Super []float64
	RHS   []float64
}

// NewSystem allocates a zeroed System with m unknowns.
// m must be ≥ 1, otherwise ErrDimensionMismatch.
func NewSystem(m int) (System, error) {
	if m < 1 {
		return System{}, fmt.Errorf("NewSystem: m=%d: %w", m, ErrDimensionMismatch)
	}

	return System{
		Sub:   make([]float64, m),
		Main:  make([]float64, m),
		Super: make([]float64, m),
		RHS:   make([]float64, m),
	}, nil
}

// Len returns the number of unknowns m (the length of Main).
func (s System) Len() int { return len(s.Main) }

// Validate checks that the four slices agree in length and are non-empty.
func (s System) Validate() error {
	m := len(s.Main)
	if m == 0 || len(s.Sub) != m || len(s.Super) != m || len(s.RHS) != m {
		return ErrDimensionMismatch
	}

	return nil
}

// Solve runs the Thomas algorithm on s. See the package-level Solve.
func (s System) Solve() ([]float64, error) {
	return Solve(s.Sub, s.Main, s.Super, s.RHS)
}

// Residual returns r = A·z − RHS computed directly from the diagonals in O(m).
func (s System) Residual(z []float64) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	m := s.Len()
	if len(z) != m {
		return nil, fmt.Errorf("Residual: len(z)=%d, m=%d: %w", len(z), m, ErrDimensionMismatch)
	}

	r := make([]float64, m)
	for i := 0; i < m; i++ {
		r[i] = s.Main[i]*z[i] - s.RHS[i]
		if i > 0 {
			r[i] += s.Sub[i] * z[i-1]
		}
		if i < m-1 {
			r[i] += s.Super[i] * z[i+1]
		}
	}

	return r, nil
}

// ResidualNorm returns the max-norm ‖A·z − RHS‖∞.
func (s System) ResidualNorm(z []float64) (float64, error) {
	r, err := s.Residual(z)
	if err != nil {
		return 0, err
	}

	return floats.Norm(r, math.Inf(1)), nil
}

// Dense expands s into a full m×m matrix; the ignored Sub[0] and Super[m-1]
// are dropped. Meant for cross-checking against matrix.Solve on small m.
// Complexity: O(m²) memory.
func (s System) Dense() (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("Dense: %w", err)
	}
	m := s.Len()
	d, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, fmt.Errorf("Dense: %w", err)
	}
	for i := 0; i < m; i++ {
		if err = d.Set(i, i, s.Main[i]); err != nil {
			return nil, fmt.Errorf("Dense: %w", err)
		}
		if i > 0 {
			if err = d.Set(i, i-1, s.Sub[i]); err != nil {
				return nil, fmt.Errorf("Dense: %w", err)
			}
		}
		if i < m-1 {
			if err = d.Set(i, i+1, s.Super[i]); err != nil {
				return nil, fmt.Errorf("Dense: %w", err)
			}
		}
	}

	return d, nil
}

// FromMatrix extracts the three diagonals of a square matrix a and pairs them
// with rhs (which is copied).
//
// Implementation:
//   - Stage 1: validate a non-nil and square, len(rhs) == rows.
//   - Stage 2: walk every entry; diagonals are copied, any other non-zero
//     entry fails with ErrNotTridiagonal.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNotTridiagonal.
//
// Complexity:
//   - Time O(m²) (the whole matrix is inspected), Space O(m).
func FromMatrix(a matrix.Matrix, rhs []float64) (System, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return System{}, fmt.Errorf("FromMatrix: %w", err)
	}
	m := a.Rows()
	if m != a.Cols() {
		return System{}, fmt.Errorf("FromMatrix: %dx%d: %w", m, a.Cols(), ErrNonSquare)
	}
	if len(rhs) != m {
		return System{}, fmt.Errorf("FromMatrix: len(rhs)=%d, rows=%d: %w", len(rhs), m, ErrDimensionMismatch)
	}

	s, err := NewSystem(m)
	if err != nil {
		return System{}, fmt.Errorf("FromMatrix: %w", err)
	}
	copy(s.RHS, rhs)

	var i, j int
	var v float64
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			if v, err = a.At(i, j); err != nil {
				return System{}, fmt.Errorf("FromMatrix: %w", err)
			}
			switch j - i {
			case -1:
				s.Sub[i] = v
			case 0:
				s.Main[i] = v
			case 1:
				s.Super[i] = v
			default:
				if v != 0 {
					return System{}, fmt.Errorf("FromMatrix: entry (%d,%d)=%g: %w", i, j, v, ErrNotTridiagonal)
				}
			}
		}
	}

	return s, nil
}

// SolveMatrix solves a·z = rhs for a tridiagonal matrix given in full form.
// It is FromMatrix followed by the Thomas sweep.
func SolveMatrix(a matrix.Matrix, rhs []float64) ([]float64, error) {
	s, err := FromMatrix(a, rhs)
	if err != nil {
		return nil, err
	}

	return s.Solve()
}
