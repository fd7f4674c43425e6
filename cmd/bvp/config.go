package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bvp/export"
	"github.com/katalvlaran/bvp/problems"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scenario is the on-disk shape of a scenario TOML file.
//
//	[problem]
//	name = "bessel-half"
//	# a, b, y0, yn override the catalog values when present
//
//	[solver]
//	steps = [0.1, 0.01, 0.001]
//	cross_check = false
//
//	[output]
//	dir = "."
//	format = "csv"
type scenario struct {
	Problem problemConf `mapstructure:"problem" toml:"problem"`
	Solver  solverConf  `mapstructure:"solver" toml:"solver"`
	Output  outputConf  `mapstructure:"output" toml:"output"`
}

type problemConf struct {
	Name string   `mapstructure:"name" toml:"name"`
	A    *float64 `mapstructure:"a" toml:"a,omitempty"`
	B    *float64 `mapstructure:"b" toml:"b,omitempty"`
	Y0   *float64 `mapstructure:"y0" toml:"y0,omitempty"`
	YN   *float64 `mapstructure:"yn" toml:"yn,omitempty"`
}

type solverConf struct {
	Steps      []float64 `mapstructure:"steps" toml:"steps"`
	CrossCheck bool      `mapstructure:"cross_check" toml:"cross_check"`
}

type outputConf struct {
	Dir    string `mapstructure:"dir" toml:"dir"`
	Format string `mapstructure:"format" toml:"format"`
}

// defaultScenario is the zero-configuration run: the Bessel sample at three steps.
func defaultScenario() scenario {
	return scenario{
		Problem: problemConf{Name: "bessel-half"},
		Solver:  solverConf{Steps: []float64{0.1, 0.01, 0.001}},
		Output:  outputConf{Dir: ".", Format: export.FormatCSV},
	}
}

// addScenarioFlags registers the flags that override scenario keys.
func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("problem", "", "catalog problem name (see `bvp problems`)")
	f.Float64Slice("step", nil, "step sizes, e.g. 0.1,0.01")
	f.Float64("a", 0, "left end of the interval")
	f.Float64("b", 0, "right end of the interval")
	f.Float64("y0", 0, "boundary value at a")
	f.Float64("yn", 0, "boundary value at b")
}

// loadScenario resolves defaults < scenario file < BVP_* environment < flags.
func loadScenario(cmd *cobra.Command) (scenario, error) {
	v := viper.New()
	def := defaultScenario()
	v.SetDefault("problem.name", def.Problem.Name)
	v.SetDefault("solver.steps", def.Solver.Steps)
	v.SetDefault("solver.cross_check", def.Solver.CrossCheck)
	v.SetDefault("output.dir", def.Output.Dir)
	v.SetDefault("output.format", def.Output.Format)

	v.SetEnvPrefix("BVP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Optional keys have no default, so AutomaticEnv alone never surfaces them.
	for _, key := range []string{"problem.a", "problem.b", "problem.y0", "problem.yn"} {
		if err := v.BindEnv(key); err != nil {
			return scenario{}, fmt.Errorf("scenario: %w", err)
		}
	}

	if path, _ := cmd.Flags().GetString("scenario"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return scenario{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	var sc scenario
	if err := v.Unmarshal(&sc); err != nil {
		return scenario{}, fmt.Errorf("scenario: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("problem") {
		sc.Problem.Name, _ = flags.GetString("problem")
	}
	if flags.Changed("step") {
		sc.Solver.Steps, _ = flags.GetFloat64Slice("step")
	}
	for _, k := range []struct {
		name string
		dst  **float64
	}{{"a", &sc.Problem.A}, {"b", &sc.Problem.B}, {"y0", &sc.Problem.Y0}, {"yn", &sc.Problem.YN}} {
		if flags.Changed(k.name) {
			val, _ := flags.GetFloat64(k.name)
			*k.dst = &val
		}
	}

	if len(sc.Solver.Steps) == 0 {
		return scenario{}, fmt.Errorf("scenario: solver.steps is empty")
	}

	return sc, nil
}

// sample looks up the catalog entry and applies interval/boundary overrides.
func (sc scenario) sample() (problems.Sample, error) {
	s, err := problems.Lookup(sc.Problem.Name)
	if err != nil {
		return problems.Sample{}, err
	}
	pr := s.Problem
	a, b, y0, yn := pr.A, pr.B, pr.Y0, pr.YN
	if sc.Problem.A != nil {
		a = *sc.Problem.A
	}
	if sc.Problem.B != nil {
		b = *sc.Problem.B
	}
	if sc.Problem.Y0 != nil {
		y0 = *sc.Problem.Y0
	}
	if sc.Problem.YN != nil {
		yn = *sc.Problem.YN
	}

	return s.WithBounds(a, b, y0, yn), nil
}
