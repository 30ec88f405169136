package trace

import "github.com/san-kum/phasependulum/internal/dynamo"

// DefaultScale is pixels per radian on the theta axis.
const DefaultScale = 100.0

// Vec is a screen-space position.
type Vec struct {
	X, Y float32
}

// Point is one recorded sample of the trace.
type Point struct {
	X, Y  float32
	Color Color
}

func (p Point) Pos() Vec { return Vec{X: p.X, Y: p.Y} }

type Projection struct {
	Scale  float64
	Center Vec
}

func (p Projection) Project(s dynamo.State) Vec {
	return Vec{
		X: p.Center.X + float32(s.Theta*p.Scale),
		Y: p.Center.Y - float32(s.Omega*p.Scale/2.0),
	}
}

// Unproject is the inverse of Project, used to place the pendulum from a cursor.
func (p Projection) Unproject(v Vec) dynamo.State {
	return dynamo.State{
		Theta: float64(v.X-p.Center.X) / p.Scale,
		Omega: float64(p.Center.Y-v.Y) / (p.Scale / 2.0),
	}
}

// Point projects s and classifies its color.
func (p Projection) Point(s dynamo.State) Point {
	v := p.Project(s)
	return Point{X: v.X, Y: v.Y, Color: Classify(s.Omega)}
}
