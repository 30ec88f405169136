package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/phasependulum/internal/config"
)

// settings holds the raw flag values shared by every subcommand.
type settings struct {
	configFile string
	preset     string
	gravity    float64
	length     float64
	damping    float64
	theta      float64
	omega      float64
	traceLimit int
	dt         float64
	duration   float64
}

func (s *settings) bindShared(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.PersistentFlags()
	f.StringVar(&s.configFile, "config", "", "config file path (yaml)")
	f.StringVar(&s.preset, "preset", "", "use preset configuration")
	f.Float64Var(&s.gravity, "gravity", def.Gravity, "gravitational acceleration")
	f.Float64Var(&s.length, "length", def.Length, "pendulum length")
	f.Float64Var(&s.damping, "damping", def.Damping, "damping coefficient")
	f.Float64Var(&s.theta, "theta", def.InitState.Theta, "initial angle")
	f.Float64Var(&s.omega, "omega", def.InitState.Omega, "initial angular velocity")
	f.IntVar(&s.traceLimit, "trace-limit", def.TraceLimit, "max trace points (0 = unbounded)")
}

func (s *settings) bindRun(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().Float64Var(&s.dt, "dt", def.Dt, "timestep")
	cmd.Flags().Float64Var(&s.duration, "time", def.Duration, "duration")
}

// resolve layers defaults, the preset, the config file and explicitly changed
// flags, in that order, and validates the result.
func (s *settings) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if s.preset != "" {
		p := config.GetPreset(s.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", s.preset, config.ListPresets())
		}
		cfg = p
	}

	if s.configFile != "" {
		loaded, err := config.LoadOver(s.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("gravity") {
		cfg.Gravity = s.gravity
	}
	if flags.Changed("length") {
		cfg.Length = s.length
	}
	if flags.Changed("damping") {
		cfg.Damping = s.damping
	}
	if flags.Changed("theta") {
		cfg.InitState.Theta = s.theta
	}
	if flags.Changed("omega") {
		cfg.InitState.Omega = s.omega
	}
	if flags.Changed("trace-limit") {
		cfg.TraceLimit = s.traceLimit
	}
	if flags.Changed("dt") {
		cfg.Dt = s.dt
	}
	if flags.Changed("time") {
		cfg.Duration = s.duration
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
