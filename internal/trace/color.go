package trace

import "math"

// HighlightThreshold is the |ω| above which a point is drawn highlighted.
const HighlightThreshold = 2.0

type Color uint8

const (
	Normal Color = iota
	Highlighted
)

// Classify uses a strict comparison: |ω| == 2 is Normal.
func Classify(omega float64) Color {
	if math.Abs(omega) > HighlightThreshold {
		return Highlighted
	}
	return Normal
}

// RGBA returns cyan for Normal and red for Highlighted.
func (c Color) RGBA() (r, g, b, a uint8) {
	if c == Highlighted {
		return 255, 0, 0, 255
	}
	return 0, 255, 255, 255
}

func (c Color) String() string {
	if c == Highlighted {
		return "highlighted"
	}
	return "normal"
}
