package sim

import (
	"math"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/integrators"
	"github.com/san-kum/phasependulum/internal/physics"
	"github.com/san-kum/phasependulum/internal/trace"
)

// DefaultSubsteps is how many integration steps one rendered frame is split into.
const DefaultSubsteps = 10

// Pendulum owns one state, one parameter set and one trace. It is driven from a
// single control loop and never fails.
type Pendulum struct {
	params     physics.Pendulum
	state      dynamo.State
	trace      trace.Trace
	proj       trace.Projection
	integrator dynamo.Integrator
}

type Option func(*Pendulum)

func WithParams(p physics.Pendulum) Option {
	return func(pd *Pendulum) { pd.params = p }
}

func WithScale(scale float64) Option {
	return func(pd *Pendulum) { pd.proj.Scale = scale }
}

// WithTraceLimit bounds the trace to the newest n points; n <= 0 keeps it unbounded.
func WithTraceLimit(n int) Option {
	return func(pd *Pendulum) { pd.trace = trace.New(n) }
}

func New(center trace.Vec, opts ...Option) *Pendulum {
	p := &Pendulum{
		params:     *physics.NewPendulum(),
		trace:      trace.NewBuffer(),
		proj:       trace.Projection{Scale: trace.DefaultScale, Center: center},
		integrator: integrators.NewRK4(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.Reset(math.Pi/4, 0)
	return p
}

// Reset sets the state and empties the trace.
func (p *Pendulum) Reset(theta0, omega0 float64) {
	p.state = dynamo.State{Theta: theta0, Omega: omega0}
	p.trace.Clear()
}

// Update advances by dt and records the new position.
func (p *Pendulum) Update(dt float64) {
	p.state = p.integrator.Step(&p.params, p.state, dt)
	p.trace.Append(p.proj.Point(p.state))
}

// Advance splits frameDt into equal substeps.
func (p *Pendulum) Advance(frameDt float64, substeps int) {
	if substeps < 1 {
		substeps = 1
	}
	h := frameDt / float64(substeps)
	for i := 0; i < substeps; i++ {
		p.Update(h)
	}
}

func (p *Pendulum) SetDamping(d float64) { p.params.Damping = d }
func (p *Pendulum) SetGravity(g float64) { p.params.Gravity = g }
func (p *Pendulum) SetLength(l float64)  { p.params.Length = l }

// SetCenter moves the projection center and shifts the recorded trace with it.
func (p *Pendulum) SetCenter(c trace.Vec) {
	dx, dy := c.X-p.proj.Center.X, c.Y-p.proj.Center.Y
	p.proj.Center = c
	if dx != 0 || dy != 0 {
		p.trace.Translate(dx, dy)
	}
}

// SetScale affects points recorded from now on.
func (p *Pendulum) SetScale(s float64) { p.proj.Scale = s }

func (p *Pendulum) State() dynamo.State { return p.state }

func (p *Pendulum) Params() physics.Pendulum { return p.params }

func (p *Pendulum) Trace() []trace.Point { return p.trace.Points() }

func (p *Pendulum) TraceLen() int { return p.trace.Len() }

func (p *Pendulum) Projection() trace.Projection { return p.proj }

// Marker is the screen position of the current state.
func (p *Pendulum) Marker() trace.Vec { return p.proj.Project(p.state) }

func (p *Pendulum) Energy() float64 { return p.params.Energy(p.state) }
