package metrics

import (
	"math"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/trace"
)

// Amplitude is the largest |θ| seen.
type Amplitude struct {
	name string
	max  float64
}

func NewAmplitude() *Amplitude {
	return &Amplitude{name: "amplitude"}
}

func (a *Amplitude) Name() string { return a.name }

func (a *Amplitude) Observe(x dynamo.State, t float64) {
	a.max = math.Max(a.max, math.Abs(x.Theta))
}

func (a *Amplitude) Value() float64 { return a.max }

func (a *Amplitude) Reset() { a.max = 0 }

// HighlightRatio is the fraction of states that would be drawn highlighted.
type HighlightRatio struct {
	name        string
	highlighted int
	samples     int
}

func NewHighlightRatio() *HighlightRatio {
	return &HighlightRatio{name: "highlight_ratio"}
}

func (h *HighlightRatio) Name() string { return h.name }

func (h *HighlightRatio) Observe(x dynamo.State, t float64) {
	h.samples++
	if trace.Classify(x.Omega) == trace.Highlighted {
		h.highlighted++
	}
}

func (h *HighlightRatio) Value() float64 {
	if h.samples == 0 {
		return 0
	}
	return float64(h.highlighted) / float64(h.samples)
}

func (h *HighlightRatio) Reset() {
	h.highlighted = 0
	h.samples = 0
}
