// Package dynamo provides the core primitives shared by the pendulum core and
// its rendering surfaces.
//
//   - [State]: angle and angular velocity of one pendulum
//   - [System]: interface for the equation of motion (dX/dt = f(X))
//   - [Integrator]: numerical stepper interface
//   - [Hamiltonian]: systems that can report their energy
//   - [Configurable]: systems with named runtime parameters
//
// # Example
//
//	p := physics.NewPendulum()
//	x := integrators.NewRK4().Step(p, dynamo.State{Theta: 0.5}, 0.01)
//
// Nothing in this package is safe for concurrent mutation; every surface owns
// its pendulum exclusively.
package dynamo
