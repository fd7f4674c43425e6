package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/katalvlaran/bvp/export"
	"github.com/katalvlaran/bvp/fdm"
	"github.com/katalvlaran/bvp/matrix"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

// maxCrossCheck bounds the dense O(m²) cross-check.
const maxCrossCheck = 1500

// crossCheckTol is the relative max-norm disagreement above which the
// cross-check warns.
const crossCheckTol = 1e-9

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a catalog problem for each configured step and export the curves",
		Long: `Solve runs the finite-difference solver once per step size and writes every
approximation, plus the exact solution sampled on the finest grid, to
<output.dir>/<problem>.<output.format>.`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}
	addScenarioFlags(cmd)
	cmd.Flags().Bool("cross-check", false, "compare the Thomas solve with a dense LU solve (small grids only)")
	cmd.Flags().String("out", "", "output directory")
	cmd.Flags().String("format", "", "output format (csv|msgpack)")

	return cmd
}

// runSolve loads the scenario, solves every step and writes one output file.
func runSolve(cmd *cobra.Command, _ []string) error {
	logger := commandLogger(cmd)
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("cross-check") {
		sc.Solver.CrossCheck, _ = cmd.Flags().GetBool("cross-check")
	}
	if cmd.Flags().Changed("out") {
		sc.Output.Dir, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("format") {
		sc.Output.Format, _ = cmd.Flags().GetString("format")
	}

	s, err := sc.sample()
	if err != nil {
		return err
	}
	logger = kitlog.With(logger, "problem", s.Name)

	series := make([]export.Series, 0, len(sc.Solver.Steps)+1)
	var finest []float64
	finestStep := math.Inf(1)
	for _, h := range sc.Solver.Steps {
		x, y, err := s.Problem.Solve(h)
		if err != nil {
			return fmt.Errorf("h=%g: %w", h, err)
		}
		_ = level.Info(logger).Log("msg", "solved", "h", h, "n", len(x))

		if sc.Solver.CrossCheck {
			if err = crossCheck(logger, s.Problem, h, y); err != nil {
				return fmt.Errorf("h=%g: %w", h, err)
			}
		}
		series = append(series, export.Series{Label: "h=" + strconv.FormatFloat(h, 'g', -1, 64), X: x, Y: y})
		if h < finestStep {
			finestStep, finest = h, x
		}
	}

	if s.Exact != nil {
		ref := make([]float64, len(finest))
		for i, xi := range finest {
			ref[i] = s.Exact(xi)
		}
		series = append([]export.Series{{Label: "exact", X: finest, Y: ref}}, series...)
	}

	if err = os.MkdirAll(sc.Output.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(sc.Output.Dir, s.Name+"."+sc.Output.Format)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = export.Write(f, sc.Output.Format, series); err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	_ = level.Info(logger).Log("msg", "wrote output", "path", path, "series", len(series))

	return nil
}

// crossCheck re-solves the interior system with dense LU and compares it to the
// Thomas solution y in the max norm, relative to max(1, ‖y‖∞). The dense residual
// ‖A·y − d‖∞ is logged alongside. A disagreement above crossCheckTol is
// logged at warn level. Grids beyond maxCrossCheck are skipped.
func crossCheck(logger kitlog.Logger, pr fdm.Problem, h float64, y []float64) error {
	_, sys, err := fdm.Assemble(pr.P, pr.Q, pr.F, h, pr.A, pr.B, pr.Y0, pr.YN)
	if err != nil {
		return err
	}
	if sys.Len() > maxCrossCheck {
		_ = level.Debug(logger).Log("msg", "cross-check skipped", "h", h, "m", sys.Len(), "limit", maxCrossCheck)

		return nil
	}
	d, err := sys.Dense()
	if err != nil {
		return err
	}
	dense, err := matrix.Solve(d, sys.RHS)
	if err != nil {
		return err
	}
	interior := y[1 : len(y)-1]
	ay, err := matrix.MatVec(d, interior)
	if err != nil {
		return err
	}
	residual := floats.Distance(ay, sys.RHS, math.Inf(1))

	diff := floats.Distance(dense, interior, math.Inf(1))
	if scale := floats.Norm(interior, math.Inf(1)); scale > 1 {
		diff /= scale
	}
	if diff > crossCheckTol {
		_ = level.Warn(logger).Log("msg", "cross-check disagreement", "h", h, "rel_diff", diff, "residual", residual, "tol", crossCheckTol)

		return nil
	}
	_ = level.Info(logger).Log("msg", "cross-check", "h", h, "rel_diff", diff, "residual", residual)

	return nil
}
