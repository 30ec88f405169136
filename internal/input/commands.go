package input

import (
	"fmt"
	"math"

	"github.com/san-kum/phasependulum/internal/sim"
	"github.com/san-kum/phasependulum/internal/trace"
)

const (
	DampedCoefficient = 0.5
	GravityStep       = 5.0
	HighTheta         = 2.0
)

// Controls is printed once when an interactive surface starts.
const Controls = `CONTROLS:
[1] No Damping (Perpetual)
[2] Add Damping (Spiral)
[Up/Down] Change Gravity
[Left mouse] Place pendulum at new position
[Space] Reset to high angle
`

type Command interface {
	apply(p *sim.Pendulum) string
}

// SelectMode switches damping on or off and restarts from the high angle.
type SelectMode struct {
	Damped bool
}

func (c SelectMode) apply(p *sim.Pendulum) string {
	if c.Damped {
		p.SetDamping(DampedCoefficient)
		p.Reset(HighTheta, 0)
		return fmt.Sprintf("Mode: Damping On (k=%g)", DampedCoefficient)
	}
	p.SetDamping(0)
	p.Reset(HighTheta, 0)
	return "Mode: No Damping"
}

// AdjustGravity changes gravity by Delta, floored at zero. The current state is
// re-applied through Reset so the old orbit's trace is dropped.
type AdjustGravity struct {
	Delta float64
}

func (c AdjustGravity) apply(p *sim.Pendulum) string {
	g := math.Max(0, p.Params().Gravity+c.Delta)
	p.SetGravity(g)
	s := p.State()
	p.Reset(s.Theta, s.Omega)
	return fmt.Sprintf("Gravity: %.6g", g)
}

type ResetHigh struct{}

func (ResetHigh) apply(p *sim.Pendulum) string {
	p.Reset(HighTheta, 0)
	return ""
}

// Place restarts from the state under a screen position.
type Place struct {
	Pos trace.Vec
}

func (c Place) apply(p *sim.Pendulum) string {
	s := p.Projection().Unproject(c.Pos)
	p.Reset(s.Theta, s.Omega)
	return ""
}

// Resize recenters the projection. State and trace are kept.
type Resize struct {
	Width, Height float32
}

func (c Resize) apply(p *sim.Pendulum) string {
	p.SetCenter(trace.Vec{X: c.Width / 2, Y: c.Height / 2})
	return ""
}

// Apply runs cmd against p and returns a console message, empty when there is
// nothing to report.
func Apply(p *sim.Pendulum, cmd Command) string {
	if cmd == nil {
		return ""
	}
	return cmd.apply(p)
}

// FromKey maps a key name to its command. Names follow bubbletea's KeyMsg.String.
func FromKey(key string) (Command, bool) {
	switch key {
	case "1":
		return SelectMode{Damped: false}, true
	case "2":
		return SelectMode{Damped: true}, true
	case "up":
		return AdjustGravity{Delta: GravityStep}, true
	case "down":
		return AdjustGravity{Delta: -GravityStep}, true
	case " ", "space":
		return ResetHigh{}, true
	}
	return nil, false
}
