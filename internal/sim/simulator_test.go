package sim_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/metrics"
	"github.com/san-kum/phasependulum/internal/physics"
	"github.com/san-kum/phasependulum/internal/sim"
)

var _ = Describe("Run", func() {
	var (
		params physics.Pendulum
		cfg    sim.RunConfig
	)

	BeforeEach(func() {
		params = *physics.NewPendulum()
		cfg = sim.RunConfig{Dt: 0.125, Duration: 1.0, ValidateState: true}
	})

	It("records the initial state and every step", func() {
		result, err := sim.Run(context.Background(), params, dynamo.State{Theta: 0.5}, cfg)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.StepsTaken).To(Equal(8))
		Expect(result.States).To(HaveLen(9))
		Expect(result.Times).To(HaveLen(9))
		Expect(result.States[0]).To(Equal(dynamo.State{Theta: 0.5}))
		Expect(result.Times[8]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(result.States[1]).To(Equal(physics.Step(dynamo.State{Theta: 0.5}, params, 0.125)))
	})

	It("fills the observed metrics", func() {
		cfg.Dt = 0.001
		result, err := sim.Run(context.Background(), params, dynamo.State{Theta: 0.2}, cfg, metrics.Defaults(&params)...)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics).To(HaveKey("energy_drift"))
		Expect(result.Metrics["amplitude"]).To(BeNumerically("~", 0.2, 1e-6))
		Expect(result.Metrics["highlight_ratio"]).To(BeZero())
		Expect(result.EnergyDrift).To(BeNumerically("<", 1e-8))
		Expect(result.Metrics["energy_drift"]).To(BeNumerically("~", result.EnergyDrift, 1e-15))
	})

	It("dissipates angular velocity when damped", func() {
		params.Damping = 0.5
		cfg = sim.RunConfig{Dt: 0.01, Duration: 60}

		result, err := sim.Run(context.Background(), params, dynamo.State{Omega: 3}, cfg)

		Expect(err).NotTo(HaveOccurred())
		Expect(math.Abs(result.Final().Omega)).To(BeNumerically("<", 1e-3))
	})

	DescribeTable("rejects invalid configuration",
		func(mutate func(*physics.Pendulum, *sim.RunConfig)) {
			mutate(&params, &cfg)
			_, err := sim.Run(context.Background(), params, dynamo.State{}, cfg)
			Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue())
		},
		Entry("zero dt", func(_ *physics.Pendulum, c *sim.RunConfig) { c.Dt = 0 }),
		Entry("negative duration", func(_ *physics.Pendulum, c *sim.RunConfig) { c.Duration = -1 }),
		Entry("zero length", func(p *physics.Pendulum, _ *sim.RunConfig) { p.Length = 0 }),
	)

	It("stops on a non-finite state when validating", func() {
		params.Gravity = math.Inf(1)

		result, err := sim.Run(context.Background(), params, dynamo.State{Theta: 1}, cfg)

		var simErr *dynamo.SimulationError
		Expect(errors.As(err, &simErr)).To(BeTrue())
		Expect(errors.Is(err, dynamo.ErrInvalidState)).To(BeTrue())
		Expect(simErr.Step).To(Equal(0))
		Expect(result.States).To(HaveLen(1))
	})

	It("propagates NaN when validation is off", func() {
		params.Gravity = math.Inf(1)
		cfg.ValidateState = false

		result, err := sim.Run(context.Background(), params, dynamo.State{Theta: 1}, cfg)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Final().IsValid()).To(BeFalse())
	})

	It("returns the partial result when canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := sim.Run(ctx, params, dynamo.State{Theta: 1}, cfg)

		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(result.StepsTaken).To(BeZero())
		Expect(result.States).To(HaveLen(1))
	})

	It("extracts component series", func() {
		result, err := sim.Run(context.Background(), params, dynamo.State{Theta: 0.5, Omega: 0.1}, cfg)
		Expect(err).NotTo(HaveOccurred())

		thetas := result.Series(sim.Theta)
		omegas := result.Series(sim.Omega)
		Expect(thetas).To(HaveLen(len(result.States)))
		Expect(thetas[0]).To(Equal(0.5))
		Expect(omegas[0]).To(Equal(0.1))
	})
})
