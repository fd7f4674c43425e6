package fdm

// Func is a coefficient function ℝ → ℝ. It must be pure: Solve may call it
// from any goroutine and in any order.
type Func func(x float64) float64

// Constant returns a Func that always yields c.
func Constant(c float64) Func {
	return func(float64) float64 { return c }
}

// Problem bundles the data of one boundary value problem except the step.
//
// Fields:
//   - P, Q, F — coefficient functions of the stencil (see package doc).
//   - A, B    — interval bounds, A < B.
//   - Y0, YN  — Dirichlet values attached at the first and last grid points.
type Problem struct {
	P, Q, F Func
	A, B    float64
	Y0, YN  float64
}

// Solve discretizes and solves the problem with step h.
func (pr Problem) Solve(h float64) (x, y []float64, err error) {
	return Solve(pr.P, pr.Q, pr.F, h, pr.A, pr.B, pr.Y0, pr.YN)
}
