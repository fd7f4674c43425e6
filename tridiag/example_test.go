package tridiag_test

import (
	"fmt"

	"github.com/katalvlaran/bvp/matrix"
	"github.com/katalvlaran/bvp/tridiag"
)

// ExampleSolve solves the four-unknown system tridiag(1, −2.6, 1)·z = d
// given directly by its diagonals.
//
// Scenario:
//
//	Steady-state temperature along a rod split into four interior nodes,
//	ends held so that the boundary terms fold into d = [−240, 0, 0, −150].
//
// Complexity: O(m) time, O(m) memory.
func ExampleSolve() {
	sub := []float64{0, 1, 1, 1}
	main := []float64{-2.6, -2.6, -2.6, -2.6}
	super := []float64{1, 1, 1, 0}
	rhs := []float64{-240, 0, 0, -150}

	z, err := tridiag.Solve(sub, main, super, rhs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", z)
	// Output:
	// [118.1122 67.0916 56.3261 79.3562]
}

// ExampleSolveMatrix feeds the same system in full matrix form.
func ExampleSolveMatrix() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{-2.6, 1, 0, 0},
		{1, -2.6, 1, 0},
		{0, 1, -2.6, 1},
		{0, 0, 1, -2.6},
	})

	z, err := tridiag.SolveMatrix(a, []float64{-240, 0, 0, -150})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", z)
	// Output:
	// [118.1122 67.0916 56.3261 79.3562]
}
