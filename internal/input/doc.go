// Package input maps discrete user commands onto pendulum operations.
//
// Both interactive surfaces translate their native events (raylib keys, bubbletea
// messages) into [Command] values and hand them to [Apply], so the window and the
// terminal behave identically.
package input
