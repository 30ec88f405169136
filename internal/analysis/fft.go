package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/phasependulum/internal/physics"
)

var (
	ErrTooFewSamples = errors.New("analysis: need at least 4 samples")
	ErrNoOscillation = errors.New("analysis: no oscillation found")
)

// PowerSpectrum returns |X[k]| for k in [0, n/2) of the mean-removed samples.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod finds the strongest non-DC frequency of samples taken every dt
// seconds and returns its period.
func DominantPeriod(samples []float64, dt float64) (float64, error) {
	if len(samples) < 4 {
		return 0, ErrTooFewSamples
	}

	ps := PowerSpectrum(samples)
	maxPower, maxIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 || maxPower < 1e-12 {
		return 0, ErrNoOscillation
	}

	freq := float64(maxIdx) / (float64(len(samples)) * dt)
	return 1.0 / freq, nil
}

// SmallAnglePeriod is 2π·√(L/g), the linearized period. Zero gravity never swings.
func SmallAnglePeriod(p physics.Pendulum) float64 {
	if p.Gravity <= 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(p.Length/p.Gravity)
}
