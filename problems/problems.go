// Package problems is a small catalog of boundary value problems with known
// exact solutions, used by the bvp command and for convergence studies.
//
// Every entry is expressed in the stencil convention of package fdm
// (the centered-difference form of y'' − p·y' − q·y = f).
package problems

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/bvp/fdm"
)

// ErrUnknownProblem is returned by Lookup for a name not in the catalog.
var ErrUnknownProblem = errors.New("problems: unknown problem")

// Sample is a catalog entry: the problem data, an exact solution and a
// one-line description.
type Sample struct {
	Name        string
	Description string
	Problem     fdm.Problem
	Exact       fdm.Func
}

var catalog = map[string]Sample{
	"bessel-half": {
		Name:        "bessel-half",
		Description: "p=-1/x, q=1/(4x^2)-1, f=0 on [1,6]; y=sin(6-x)/(sin(5)*sqrt(x))",
		Problem: fdm.Problem{
			P:  func(x float64) float64 { return -1 / x },
			Q:  func(x float64) float64 { return 1/(4*x*x) - 1 },
			F:  fdm.Constant(0),
			A:  1,
			B:  6,
			Y0: 1,
			YN: 0,
		},
		Exact: func(x float64) float64 { return math.Sin(6-x) / (math.Sin(5) * math.Sqrt(x)) },
	},
	"harmonic": {
		Name:        "harmonic",
		Description: "p=0, q=1, f=0 on [0,1]; y=sinh(1-x)/sinh(1)",
		Problem: fdm.Problem{
			P:  fdm.Constant(0),
			Q:  fdm.Constant(1),
			F:  fdm.Constant(0),
			A:  0,
			B:  1,
			Y0: 1,
			YN: 0,
		},
		Exact: func(x float64) float64 { return math.Sinh(1-x) / math.Sinh(1) },
	},
	"poisson": {
		Name:        "poisson",
		Description: "p=0, q=0, f=-2 on [0,1]; y=x(1-x)",
		Problem: fdm.Problem{
			P:  fdm.Constant(0),
			Q:  fdm.Constant(0),
			F:  fdm.Constant(-2),
			A:  0,
			B:  1,
			Y0: 0,
			YN: 0,
		},
		Exact: func(x float64) float64 { return x * (1 - x) },
	},
}

// Lookup returns the catalog entry called name.
func Lookup(name string) (Sample, error) {
	s, ok := catalog[name]
	if !ok {
		return Sample{}, fmt.Errorf("%q: %w", name, ErrUnknownProblem)
	}

	return s, nil
}

// Names lists the catalog in lexical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// WithBounds returns a copy of s whose interval and boundary values are
// replaced. The exact solution is kept as is, so it only matches when the
// new data agrees with it.
func (s Sample) WithBounds(a, b, y0, yn float64) Sample {
	s.Problem.A, s.Problem.B = a, b
	s.Problem.Y0, s.Problem.YN = y0, yn

	return s
}
