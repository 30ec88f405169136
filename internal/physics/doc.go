// Package physics provides the equation of motion of a simple pendulum.
//
// [Pendulum] implements [dynamo.System], [dynamo.Hamiltonian] and
// [dynamo.Configurable]:
//
//	dθ/dt = ω
//	dω/dt = −(g/L)·sin θ − damping·ω
//
// [Step] is the pure fixed-step RK4 update used by every caller:
//
//	next := physics.Step(state, *physics.NewPendulum(), 0.001)
package physics
