package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

const defaultScenarioPath = "scenario.toml"

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default scenario TOML file",
		Long: `Init writes the default scenario (the Bessel sample at h = 0.1, 0.01, 0.001,
CSV output in the current directory) to [path], scenario.toml by default.
An existing file is only replaced with --force.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
	cmd.Flags().Bool("force", false, "overwrite an existing file")

	return cmd
}

// runInit encodes defaultScenario as TOML and writes it to the target path.
func runInit(cmd *cobra.Command, args []string) error {
	path := defaultScenarioPath
	if len(args) == 1 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := encodeScenario(defaultScenario())
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	_ = level.Info(commandLogger(cmd)).Log("msg", "scenario written", "path", path)

	return nil
}

// encodeScenario renders sc as TOML.
func encodeScenario(sc scenario) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(sc); err != nil {
		return nil, fmt.Errorf("failed to encode TOML: %w", err)
	}

	return buf.Bytes(), nil
}
