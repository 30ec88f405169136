package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/metrics"
	"github.com/san-kum/phasependulum/internal/physics"
)

// Run integrates p from x0 for cfg.Duration without any rendering surface.
func Run(ctx context.Context, p physics.Pendulum, x0 dynamo.State, cfg RunConfig, ms ...metrics.Metric) (*Result, error) {
	if err := validate(p, cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([]dynamo.State, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range ms {
		m.Reset()
	}

	x := x0
	t := 0.0
	result.States = append(result.States, x)
	result.Times = append(result.Times, t)

	initialEnergy := p.Energy(x)
	maxDrift := 0.0
	observe := func(x dynamo.State, t float64) {
		for _, m := range ms {
			m.Observe(x, t)
		}
		if initialEnergy != 0 {
			maxDrift = math.Max(maxDrift, math.Abs(p.Energy(x)-initialEnergy)/math.Abs(initialEnergy))
		}
	}
	observe(x, t)

	var runErr error
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		next := physics.Step(x, p, cfg.Dt)
		if cfg.ValidateState && !next.IsValid() {
			runErr = &dynamo.SimulationError{Step: i, Time: t, State: next, Wrapped: dynamo.ErrInvalidState}
			break
		}

		x = next
		t += cfg.Dt
		result.StepsTaken++
		result.States = append(result.States, x)
		result.Times = append(result.Times, t)
		observe(x, t)
	}

	result.EnergyDrift = maxDrift
	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, runErr
}

func validate(p physics.Pendulum, cfg RunConfig) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrParameterBounds, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", dynamo.ErrParameterBounds, cfg.Duration)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %f", dynamo.ErrParameterBounds, p.Length)
	}
	return nil
}
