package tridiag

import "fmt"

// zeroPivot is the exact value that aborts elimination.
const zeroPivot = 0.0

// Solve — Thomas algorithm for a tridiagonal system A·z = rhs.
//
// Description:
//
//	Row i of A reads sub[i]·z[i-1] + main[i]·z[i] + super[i]·z[i+1] = rhs[i].
//	The forward sweep normalises each row so that its diagonal becomes 1 and
//	its sub-diagonal vanishes; back substitution then reads z off bottom-up.
//
// Algorithm Outline:
//  1. c'[0] = super[0]/main[0], d'[0] = rhs[0]/main[0].
//  2. For i = 1..m-1:
//     pivot = main[i] − sub[i]·c'[i-1]
//     c'[i] = super[i]/pivot
//     d'[i] = (rhs[i] − sub[i]·d'[i-1])/pivot
//  3. z[m-1] = d'[m-1]; for i = m-2..0: z[i] = d'[i] − c'[i]·z[i+1].
//
// Complexity:
//
//	Time   = O(m)
//	Memory = O(m) for c', d' and z
//
// Errors:
//   - ErrDimensionMismatch — lengths differ or m == 0; nothing is computed.
//   - ErrSingularSystem    — a pivot (main[0] included) is exactly zero,
//     returned as *PivotError with the failing row.
//
// The input slices are read-only; c' and d' are private to the call.
func Solve(sub, main, super, rhs []float64) ([]float64, error) {
	m := len(main)
	if m == 0 || len(sub) != m || len(super) != m || len(rhs) != m {
		return nil, fmt.Errorf("Solve: len(sub)=%d len(main)=%d len(super)=%d len(rhs)=%d: %w",
			len(sub), m, len(super), len(rhs), ErrDimensionMismatch)
	}

	if main[0] == zeroPivot {
		return nil, &PivotError{Index: 0}
	}

	cp := make([]float64, m) // c' (normalised super-diagonal)
	dp := make([]float64, m) // d' (normalised right-hand side)

	// Forward sweep.
	if m > 1 {
		cp[0] = super[0] / main[0]
	}
	dp[0] = rhs[0] / main[0]

	var pivot float64
	for i := 1; i < m; i++ {
		pivot = main[i] - sub[i]*cp[i-1]
		if pivot == zeroPivot {
			return nil, &PivotError{Index: i}
		}
		if i < m-1 {
			cp[i] = super[i] / pivot
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / pivot
	}

	// Back substitution.
	z := make([]float64, m)
	z[m-1] = dp[m-1]
	for i := m - 2; i >= 0; i-- {
		z[i] = dp[i] - cp[i]*z[i+1]
	}

	return z, nil
}
