package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"default": {
		Gravity: 9.81, Length: 1.0, Dt: DefaultDt, Duration: 20.0,
		InitState: InitStateConfig{Theta: math.Pi / 4},
	},
	"small": {
		Gravity: 9.81, Length: 1.0, Dt: DefaultDt, Duration: 20.0,
		InitState: InitStateConfig{Theta: 0.2, Omega: 0.0},
	},
	"high": {
		Gravity: 9.81, Length: 1.0, Dt: DefaultDt, Duration: 20.0,
		InitState: InitStateConfig{Theta: 2.0, Omega: 0.0},
	},
	"spiral": {
		Gravity: 9.81, Length: 1.0, Damping: 0.5, Dt: DefaultDt, Duration: 30.0,
		InitState: InitStateConfig{Theta: 2.0, Omega: 0.0},
	},
	"spinning": {
		Gravity: 9.81, Length: 1.0, Dt: DefaultDt, Duration: 30.0,
		InitState: InitStateConfig{Theta: 0.1, Omega: 8.0},
	},
	"moon": {
		Gravity: 1.62, Length: 1.0, Dt: DefaultDt, Duration: 30.0,
		InitState: InitStateConfig{Theta: 1.0, Omega: 0.0},
	},
}

// GetPreset returns a copy so callers can override fields freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
