package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/physics"
	"github.com/san-kum/phasependulum/internal/sim"
	"github.com/san-kum/phasependulum/internal/trace"
)

var _ = Describe("Pendulum", func() {
	var (
		center trace.Vec
		p      *sim.Pendulum
	)

	BeforeEach(func() {
		center = trace.Vec{X: 400, Y: 300}
		p = sim.New(center)
	})

	It("starts at a quarter turn with the default parameters", func() {
		Expect(p.State()).To(Equal(dynamo.State{Theta: math.Pi / 4}))
		Expect(p.Params()).To(Equal(*physics.NewPendulum()))
		Expect(p.Trace()).To(BeEmpty())
		Expect(p.Projection().Scale).To(Equal(trace.DefaultScale))
	})

	Describe("Reset", func() {
		It("sets the state exactly and empties the trace", func() {
			p.Advance(0.016, sim.DefaultSubsteps)
			Expect(p.TraceLen()).To(Equal(sim.DefaultSubsteps))

			p.Reset(1.25, -0.5)

			Expect(p.State()).To(Equal(dynamo.State{Theta: 1.25, Omega: -0.5}))
			Expect(p.Trace()).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("leaves the state unchanged for dt = 0 but records one point", func() {
			p.Reset(2.0, 0.75)

			p.Update(0)

			Expect(p.State()).To(Equal(dynamo.State{Theta: 2.0, Omega: 0.75}))
			pts := p.Trace()
			Expect(pts).To(HaveLen(1))
			Expect(pts[0].Pos()).To(Equal(p.Marker()))
		})

		It("appends the projected point of the new state", func() {
			p.Reset(0.5, 0)
			p.Update(0.01)

			want := physics.Step(dynamo.State{Theta: 0.5}, *physics.NewPendulum(), 0.01)
			Expect(p.State()).To(Equal(want))
			Expect(p.Trace()[0]).To(Equal(p.Projection().Point(want)))
		})

		It("colors points by angular velocity", func() {
			p.Reset(0, 1.5)
			p.Update(0)
			Expect(p.Trace()[0].Color).To(Equal(trace.Normal))

			p.Reset(0, 2.5)
			p.Update(0)
			Expect(p.Trace()[0].Color).To(Equal(trace.Highlighted))

			p.Reset(0, 2.0)
			p.Update(0)
			Expect(p.Trace()[0].Color).To(Equal(trace.Normal))
		})

		It("grows the trace without bound by default", func() {
			for i := 0; i < 5000; i++ {
				p.Update(0.001)
			}
			Expect(p.TraceLen()).To(Equal(5000))
		})
	})

	Describe("Advance", func() {
		It("matches calling Update with the divided frame time", func() {
			q := sim.New(center)
			p.Advance(0.02, 10)
			for i := 0; i < 10; i++ {
				q.Update(0.002)
			}
			Expect(p.State()).To(Equal(q.State()))
			Expect(p.Trace()).To(Equal(q.Trace()))
		})

		It("treats a non-positive substep count as one step", func() {
			p.Advance(0.01, 0)
			Expect(p.TraceLen()).To(Equal(1))
		})
	})

	Describe("setters", func() {
		It("take effect on the next update without touching the state", func() {
			p.Reset(1.0, 0)
			p.SetGravity(0)
			p.SetDamping(0)
			p.SetLength(3)

			Expect(p.State()).To(Equal(dynamo.State{Theta: 1.0}))
			Expect(p.Params()).To(Equal(physics.Pendulum{Gravity: 0, Length: 3, Damping: 0}))

			p.Update(0.1)
			Expect(p.State()).To(Equal(dynamo.State{Theta: 1.0}))
		})
	})

	Describe("SetCenter", func() {
		It("shifts the existing trace so it lines up with the new projection", func() {
			p.Reset(0.3, 1.1)
			for i := 0; i < 50; i++ {
				p.Update(0.01)
			}
			last := p.Trace()[49]

			p.SetCenter(trace.Vec{X: 640, Y: 360})

			Expect(p.TraceLen()).To(Equal(50))
			moved := p.Trace()[49]
			marker := p.Marker()
			Expect(moved.X).To(BeNumerically("~", marker.X, 1e-3))
			Expect(moved.Y).To(BeNumerically("~", marker.Y, 1e-3))
			Expect(moved.X - last.X).To(BeNumerically("~", 240, 1e-3))
			Expect(moved.Y - last.Y).To(BeNumerically("~", 60, 1e-3))
		})
	})

	Describe("options", func() {
		It("bounds the trace when a limit is set", func() {
			b := sim.New(center, sim.WithTraceLimit(100), sim.WithScale(50))
			for i := 0; i < 1000; i++ {
				b.Update(0.001)
			}
			Expect(b.TraceLen()).To(Equal(100))
			Expect(b.Projection().Scale).To(Equal(50.0))
			pts := b.Trace()
			Expect(pts[len(pts)-1].Pos()).To(Equal(b.Marker()))
		})

		It("uses the given parameters", func() {
			params := physics.Pendulum{Gravity: 1.62, Length: 2, Damping: 0.5}
			Expect(sim.New(center, sim.WithParams(params)).Params()).To(Equal(params))
		})
	})

	It("keeps frictionless energy within a small drift", func() {
		p.Reset(0.2, 0)
		e0 := p.Energy()
		for i := 0; i < 600; i++ {
			p.Advance(1.0/60.0, sim.DefaultSubsteps)
		}
		Expect(math.Abs(p.Energy()-e0) / math.Abs(e0)).To(BeNumerically("<", 1e-6))
	})
})
