package metrics

import "github.com/san-kum/phasependulum/internal/dynamo"

// Metric accumulates a scalar over the states of a run.
type Metric interface {
	Name() string
	Observe(x dynamo.State, t float64)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported by headless runs.
func Defaults(dyn dynamo.Hamiltonian) []Metric {
	return []Metric{
		NewEnergy(dyn),
		NewEnergyDrift(dyn),
		NewAmplitude(),
		NewHighlightRatio(),
	}
}
