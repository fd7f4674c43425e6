// Command bvp solves the sample boundary value problems of package problems
// with the finite difference method and exports the resulting curves.
//
//	bvp init scenario.toml
//	bvp solve --scenario scenario.toml
//	bvp study --problem harmonic --step 0.1,0.01,0.001
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bvp",
		Short:         "Finite-difference solver for two-point boundary value problems",
		Long:          `bvp discretizes y'' - p y' - q y = f with Dirichlet ends on a uniform grid and solves the tridiagonal system with the Thomas algorithm.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: applyColor,
	}
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("scenario", "", "scenario TOML file")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(), newStudyCmd(), newInitCmd(), newProblemsCmd())

	return root
}

// main executes the root command. Any error is logged and the process exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		_ = level.Error(newLogger(false)).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}

// newLogger returns a logfmt logger on stderr, filtered at info (or debug when verbose).
func newLogger(verbose bool) kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}

	return level.NewFilter(logger, level.AllowInfo())
}

// commandLogger builds the logger for cmd from its --verbose flag.
func commandLogger(cmd *cobra.Command) kitlog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")

	return kitlog.With(newLogger(verbose), "cmd", cmd.Name())
}

// applyColor sets the global color mode from --color.
func applyColor(cmd *cobra.Command, _ []string) error {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("--color=%q: want auto, on or off", mode)
	}

	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
