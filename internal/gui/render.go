package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/phasependulum/internal/trace"
)

const markerRadius = 5

func toColor(c trace.Color) rl.Color {
	r, g, b, alpha := c.RGBA()
	return rl.NewColor(r, g, b, alpha)
}

func toVector(v trace.Vec) rl.Vector2 {
	return rl.NewVector2(v.X, v.Y)
}

// drawAxes draws the θ and ω axes through the projection center.
func (a *App) drawAxes() {
	c := a.Pend.Projection().Center
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	rl.DrawLineV(rl.NewVector2(0, c.Y), rl.NewVector2(w, c.Y), ColAxis)
	rl.DrawLineV(rl.NewVector2(c.X, 0), rl.NewVector2(c.X, h), ColAxis)
}

// drawTrace connects consecutive points, each segment colored by its newer end.
func (a *App) drawTrace() {
	pts := a.Pend.Trace()
	for i := 1; i < len(pts); i++ {
		rl.DrawLineV(toVector(pts[i-1].Pos()), toVector(pts[i].Pos()), toColor(pts[i].Color))
	}
}

func (a *App) drawMarker() {
	rl.DrawCircleV(toVector(a.Pend.Marker()), markerRadius, ColMarker)
}

// DrawTelemetry plots the recent energy history in the lower left corner.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := 20, int(rl.GetScreenHeight())-100
	width, height := 240, 50

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("E: %.3f", a.Telemetry[len(a.Telemetry)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}
