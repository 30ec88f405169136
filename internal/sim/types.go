package sim

import "github.com/san-kum/phasependulum/internal/dynamo"

type RunConfig struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Dt:            0.01,
		Duration:      10.0,
		ValidateState: true,
	}
}

type Result struct {
	States      []dynamo.State
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
}

// Final returns the last recorded state.
func (r *Result) Final() dynamo.State {
	if len(r.States) == 0 {
		return dynamo.State{}
	}
	return r.States[len(r.States)-1]
}

// Series extracts one component of every recorded state.
func (r *Result) Series(component func(dynamo.State) float64) []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = component(s)
	}
	return out
}

func Theta(s dynamo.State) float64 { return s.Theta }
func Omega(s dynamo.State) float64 { return s.Omega }
