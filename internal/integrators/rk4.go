package integrators

import "github.com/san-kum/phasependulum/internal/dynamo"

// RK4 is the classical fixed-step fourth-order Runge-Kutta method. It keeps no
// error estimate and never adapts dt; callers substep for stability.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, dt float64) dynamo.State {
	k1 := dyn.Derive(x)
	k2 := dyn.Derive(x.Add(k1.Scale(dt * 0.5)))
	k3 := dyn.Derive(x.Add(k2.Scale(dt * 0.5)))
	k4 := dyn.Derive(x.Add(k3.Scale(dt)))

	dt6 := dt / 6.0
	return dynamo.State{
		Theta: x.Theta + dt6*(k1.Theta+2*k2.Theta+2*k3.Theta+k4.Theta),
		Omega: x.Omega + dt6*(k1.Omega+2*k2.Omega+2*k3.Omega+k4.Omega),
	}
}
