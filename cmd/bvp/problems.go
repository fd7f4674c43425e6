package main

import (
	"fmt"

	"github.com/katalvlaran/bvp/problems"
	"github.com/spf13/cobra"
)

func newProblemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the built-in problems",
		Args:  cobra.NoArgs,
		RunE:  runProblems,
	}
}

// runProblems prints one catalog entry per line.
func runProblems(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, name := range problems.Names() {
		s, err := problems.Lookup(name)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(out, "%-12s %s\n", name, s.Description); err != nil {
			return err
		}
	}

	return nil
}
