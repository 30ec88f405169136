package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/integrators"
)

const (
	DefaultGravity = 9.81
	DefaultLength  = 1.0
	DefaultDamping = 0.0
)

// Pendulum holds the parameters of a simple pendulum with linear damping.
// Length must stay strictly positive; nothing here enforces it.
type Pendulum struct {
	Gravity float64
	Length  float64
	Damping float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Gravity: DefaultGravity,
		Length:  DefaultLength,
		Damping: DefaultDamping,
	}
}

func (p *Pendulum) Derive(x dynamo.State) dynamo.State {
	return Derivative(x, *p)
}

// Energy is the per-unit-mass mechanical energy 0.5·ω² − (g/L)·cos θ.
func (p *Pendulum) Energy(x dynamo.State) float64 {
	return 0.5*x.Omega*x.Omega - (p.Gravity/p.Length)*math.Cos(x.Theta)
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity": p.Gravity,
		"length":  p.Length,
		"damping": p.Damping,
	}
}

func (p *Pendulum) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		p.Gravity = value
	case "length":
		p.Length = value
	case "damping":
		p.Damping = value
	default:
		return fmt.Errorf("%w: %s", dynamo.ErrUnknownParam, name)
	}
	return nil
}

// Derivative is the instantaneous rate of change of s under p.
func Derivative(s dynamo.State, p Pendulum) dynamo.State {
	return dynamo.State{
		Theta: s.Omega,
		Omega: -(p.Gravity/p.Length)*math.Sin(s.Theta) - p.Damping*s.Omega,
	}
}

var rk4 = integrators.NewRK4()

// Step advances s by one RK4 step of size dt. It has no side effects.
func Step(s dynamo.State, p Pendulum, dt float64) dynamo.State {
	return rk4.Step(&p, s, dt)
}
