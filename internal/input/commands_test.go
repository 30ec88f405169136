package input_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/input"
	"github.com/san-kum/phasependulum/internal/sim"
	"github.com/san-kum/phasependulum/internal/trace"
)

var _ = Describe("Commands", func() {
	var p *sim.Pendulum

	BeforeEach(func() {
		p = sim.New(trace.Vec{X: 400, Y: 300})
		p.Advance(0.1, sim.DefaultSubsteps)
	})

	Describe("SelectMode", func() {
		It("turns damping on and restarts from the high angle", func() {
			msg := input.Apply(p, input.SelectMode{Damped: true})

			Expect(msg).To(Equal("Mode: Damping On (k=0.5)"))
			Expect(p.Params().Damping).To(Equal(0.5))
			Expect(p.State()).To(Equal(dynamo.State{Theta: 2.0}))
			Expect(p.Trace()).To(BeEmpty())
		})

		It("turns damping off", func() {
			p.SetDamping(0.5)

			msg := input.Apply(p, input.SelectMode{})

			Expect(msg).To(Equal("Mode: No Damping"))
			Expect(p.Params().Damping).To(BeZero())
			Expect(p.State()).To(Equal(dynamo.State{Theta: 2.0}))
		})
	})

	Describe("AdjustGravity", func() {
		It("raises gravity and keeps the current state", func() {
			before := p.State()

			msg := input.Apply(p, input.AdjustGravity{Delta: input.GravityStep})

			Expect(msg).To(Equal("Gravity: 14.81"))
			Expect(p.Params().Gravity).To(BeNumerically("~", 14.81, 1e-12))
			Expect(p.State()).To(Equal(before))
			Expect(p.Trace()).To(BeEmpty())
		})

		It("floors gravity at zero", func() {
			input.Apply(p, input.AdjustGravity{Delta: -input.GravityStep})
			msg := input.Apply(p, input.AdjustGravity{Delta: -input.GravityStep})

			Expect(p.Params().Gravity).To(BeZero())
			Expect(msg).To(Equal("Gravity: 0"))
		})
	})

	It("resets to the high angle unconditionally", func() {
		Expect(input.Apply(p, input.ResetHigh{})).To(BeEmpty())
		Expect(p.State()).To(Equal(dynamo.State{Theta: 2.0}))
		Expect(p.Trace()).To(BeEmpty())
	})

	It("places the pendulum under the cursor", func() {
		input.Apply(p, input.Place{Pos: trace.Vec{X: 500, Y: 250}})

		Expect(p.State().Theta).To(BeNumerically("~", 1.0, 1e-9))
		Expect(p.State().Omega).To(BeNumerically("~", 1.0, 1e-9))
		Expect(p.Trace()).To(BeEmpty())
	})

	It("recenters on resize without clearing", func() {
		before := p.State()
		n := p.TraceLen()

		input.Apply(p, input.Resize{Width: 1024, Height: 768})

		Expect(p.Projection().Center).To(Equal(trace.Vec{X: 512, Y: 384}))
		Expect(p.State()).To(Equal(before))
		Expect(p.TraceLen()).To(Equal(n))
	})

	It("ignores a nil command", func() {
		before := p.State()
		Expect(input.Apply(p, nil)).To(BeEmpty())
		Expect(p.State()).To(Equal(before))
	})

	DescribeTable("maps key names",
		func(key string, expected input.Command) {
			cmd, ok := input.FromKey(key)
			Expect(ok).To(BeTrue())
			Expect(cmd).To(Equal(expected))
		},
		Entry("free", "1", input.SelectMode{Damped: false}),
		Entry("damped", "2", input.SelectMode{Damped: true}),
		Entry("gravity up", "up", input.AdjustGravity{Delta: 5}),
		Entry("gravity down", "down", input.AdjustGravity{Delta: -5}),
		Entry("space", " ", input.ResetHigh{}),
		Entry("space alias", "space", input.ResetHigh{}),
	)

	It("rejects unknown keys", func() {
		_, ok := input.FromKey("x")
		Expect(ok).To(BeFalse())
	})
})
