// Package viz provides the terminal surface for the phase portrait.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: owns one [sim.Pendulum], advances it on every tick and draws it
//   - [Canvas]: Braille-based pixel canvas with per-cell ink
//   - [Theme]: color schemes, cycled with T
//
// # Key Bindings
//
//	1       - No damping, restart from the high angle
//	2       - Damping on, restart from the high angle
//	Up/Down - Gravity ±5
//	Space   - Restart from the high angle
//	Click   - Place the pendulum at the clicked phase point
//	T       - Cycle color themes
//	Q/Esc   - Quit
package viz
