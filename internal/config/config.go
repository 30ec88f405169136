package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/physics"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
)

// DefaultTheta is the starting angle of a fresh pendulum.
var DefaultTheta = math.Pi / 4

type Config struct {
	Gravity    float64         `yaml:"gravity"`
	Length     float64         `yaml:"length"`
	Damping    float64         `yaml:"damping"`
	InitState  InitStateConfig `yaml:"init_state"`
	TraceLimit int             `yaml:"trace_limit"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
}

type InitStateConfig struct {
	Theta float64 `yaml:"theta"`
	Omega float64 `yaml:"omega"`
}

func DefaultConfig() *Config {
	return &Config{
		Gravity:  physics.DefaultGravity,
		Length:   physics.DefaultLength,
		Damping:  physics.DefaultDamping,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		InitState: InitStateConfig{
			Theta: DefaultTheta,
		},
	}
}

// Load reads a yaml file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a yaml file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate applies the caller-side policy the core itself does not enforce.
func (c *Config) Validate() error {
	switch {
	case !(c.Length > 0):
		return fmt.Errorf("%w: length must be positive, got %g", dynamo.ErrParameterBounds, c.Length)
	case c.Gravity < 0:
		return fmt.Errorf("%w: gravity must be non-negative, got %g", dynamo.ErrParameterBounds, c.Gravity)
	case c.Damping < 0:
		return fmt.Errorf("%w: damping must be non-negative, got %g", dynamo.ErrParameterBounds, c.Damping)
	case c.TraceLimit < 0:
		return fmt.Errorf("%w: trace_limit must be non-negative, got %d", dynamo.ErrParameterBounds, c.TraceLimit)
	case !(c.Dt > 0):
		return fmt.Errorf("%w: dt must be positive, got %g", dynamo.ErrParameterBounds, c.Dt)
	case !(c.Duration > 0):
		return fmt.Errorf("%w: duration must be positive, got %g", dynamo.ErrParameterBounds, c.Duration)
	}
	return nil
}

func (c *Config) Params() physics.Pendulum {
	return physics.Pendulum{
		Gravity: c.Gravity,
		Length:  c.Length,
		Damping: c.Damping,
	}
}

func (c *Config) GetInitState() dynamo.State {
	return dynamo.State{Theta: c.InitState.Theta, Omega: c.InitState.Omega}
}
