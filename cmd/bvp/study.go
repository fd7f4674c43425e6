package main

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/katalvlaran/bvp/fdm"
	"github.com/spf13/cobra"
)

// minGoodOrder is the observed order below which a row is highlighted.
const minGoodOrder = 0.9

func newStudyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Print max-norm errors and observed orders against the exact solution",
		Args:  cobra.NoArgs,
		RunE:  runStudy,
	}
	addScenarioFlags(cmd)

	return cmd
}

// runStudy runs fdm.Study for the configured steps and prints a table.
func runStudy(cmd *cobra.Command, _ []string) error {
	logger := commandLogger(cmd)
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	s, err := sc.sample()
	if err != nil {
		return err
	}
	if sc.Problem.A != nil || sc.Problem.B != nil || sc.Problem.Y0 != nil || sc.Problem.YN != nil {
		_ = level.Warn(logger).Log("msg", "interval or boundary overridden; exact solution may no longer apply", "problem", s.Name)
	}

	res, err := fdm.Study(cmd.Context(), s.Problem, s.Exact, sc.Solver.Steps)
	if err != nil {
		return err
	}
	_ = level.Debug(logger).Log("msg", "study done", "problem", s.Name, "steps", len(res))

	return printStudy(cmd.OutOrStdout(), s.Name, res)
}

// printStudy writes one row per step; weak orders are yellow, good ones green.
func printStudy(w io.Writer, name string, res []fdm.StudyResult) error {
	bold := color.New(color.Bold)
	good := color.New(color.FgGreen)
	weak := color.New(color.FgYellow)

	if _, err := bold.Fprintf(w, "%s\n%-10s %8s %12s %8s\n", name, "h", "n", "max error", "order"); err != nil {
		return err
	}
	for _, r := range res {
		if _, err := fmt.Fprintf(w, "%-10g %8d %12.4e ", r.Step, len(r.X), r.MaxError); err != nil {
			return err
		}
		var err error
		switch {
		case math.IsNaN(r.Order):
			_, err = fmt.Fprintf(w, "%8s\n", "-")
		case r.Order >= minGoodOrder:
			_, err = good.Fprintf(w, "%8.3f\n", r.Order)
		default:
			_, err = weak.Fprintf(w, "%8.3f\n", r.Order)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
