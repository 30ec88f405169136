package dynamo

import (
	"fmt"
	"math"
)

// State is the dynamical state of a single pendulum: angle and angular velocity.
// Theta is never wrapped to [-π, π].
type State struct {
	Theta float64
	Omega float64
}

func (s State) Add(other State) State {
	return State{Theta: s.Theta + other.Theta, Omega: s.Omega + other.Omega}
}

func (s State) Scale(factor float64) State {
	return State{Theta: s.Theta * factor, Omega: s.Omega * factor}
}

func (s State) Sub(other State) State {
	return State{Theta: s.Theta - other.Theta, Omega: s.Omega - other.Omega}
}

func (s State) IsValid() bool {
	for _, v := range [2]float64{s.Theta, s.Omega} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	return math.Hypot(s.Theta, s.Omega)
}

func (s State) String() string {
	return fmt.Sprintf("θ=%.4f ω=%.4f", s.Theta, s.Omega)
}

type System interface {
	Derive(x State) State
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn System, x State, dt float64) State
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
