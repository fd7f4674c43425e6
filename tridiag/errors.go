// SPDX-License-Identifier: MIT
// Package tridiag: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with %w); tests check
// them via errors.Is. Nothing in this package panics on user input.

package tridiag

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates that the diagonals and right-hand side
	// disagree in length, or that the system is empty. Detected before any
	// arithmetic.
	ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")

	// ErrSingularSystem indicates an exactly zero pivot during the forward sweep.
	// Returned wrapped in a *PivotError carrying the failing row.
	ErrSingularSystem = errors.New("tridiag: singular system (zero pivot)")

	// ErrNonSquare signals that FromMatrix received a non-square matrix.
	ErrNonSquare = errors.New("tridiag: matrix is not square")

	// ErrNotTridiagonal signals a non-zero entry outside the three central diagonals.
	ErrNotTridiagonal = errors.New("tridiag: matrix is not tridiagonal")
)

// PivotError reports the row at which elimination met a zero pivot.
// It unwraps to ErrSingularSystem.
type PivotError struct {
	Index int // zero-based row of the zero pivot
}

// Error implements error.
func (e *PivotError) Error() string {
	return fmt.Sprintf("%v at row %d", ErrSingularSystem, e.Index)
}

// Unwrap exposes ErrSingularSystem to errors.Is.
func (e *PivotError) Unwrap() error { return ErrSingularSystem }
