// Package trace maps pendulum states to screen points and keeps the ordered
// phase-space path drawn behind the moving marker.
//
// A [Projection] turns a state into a screen position:
//
//	x = cx + θ·s
//	y = cy − ω·(s/2)
//
// Omega is scaled by half of theta's factor so both axes fit in view.
//
// [Buffer] grows without bound until cleared. [Ring] keeps only the newest
// points and is opt-in.
package trace
