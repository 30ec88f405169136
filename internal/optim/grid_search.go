package optim

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/phasependulum/internal/dynamo"
	"github.com/san-kum/phasependulum/internal/metrics"
	"github.com/san-kum/phasependulum/internal/physics"
	"github.com/san-kum/phasependulum/internal/sim"
)

// Axis is one swept parameter and the values it takes.
type Axis struct {
	Name   string
	Values []float64
}

// ParseAxis reads "name=start:stop:step" (stop inclusive) or "name=v1,v2,...".
func ParseAxis(spec string) (Axis, error) {
	name, values, ok := strings.Cut(spec, "=")
	if !ok || name == "" || values == "" {
		return Axis{}, fmt.Errorf("axis %q: expected name=values", spec)
	}
	axis := Axis{Name: name}

	if parts := strings.Split(values, ":"); len(parts) == 3 {
		var nums [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return Axis{}, fmt.Errorf("axis %q: %w", spec, err)
			}
			nums[i] = v
		}
		start, stop, step := nums[0], nums[1], nums[2]
		if !(step > 0) || stop < start {
			return Axis{}, fmt.Errorf("axis %q: need step > 0 and stop >= start", spec)
		}
		n := int(math.Floor((stop-start)/step+1e-9)) + 1
		for i := 0; i < n; i++ {
			axis.Values = append(axis.Values, start+float64(i)*step)
		}
		return axis, nil
	}

	for _, p := range strings.Split(values, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Axis{}, fmt.Errorf("axis %q: %w", spec, err)
		}
		axis.Values = append(axis.Values, v)
	}
	return axis, nil
}

// Point is one evaluated grid cell.
type Point struct {
	Params map[string]float64
	Value  float64
}

// Objective scores one parameter combination.
type Objective func(ctx context.Context, params map[string]float64) (float64, error)

type GridSearch struct {
	axes []Axis
}

func NewGridSearch(axes ...Axis) *GridSearch {
	return &GridSearch{axes: axes}
}

// Search evaluates every combination in axis order and returns all points and
// the index of the smallest value. The first objective error aborts the search.
func (g *GridSearch) Search(ctx context.Context, eval Objective) ([]Point, int, error) {
	var points []Point
	best := -1

	err := g.searchRecursive(ctx, 0, map[string]float64{}, func(params map[string]float64) error {
		val, err := eval(ctx, params)
		if err != nil {
			return err
		}
		points = append(points, Point{Params: params, Value: val})
		if best < 0 || val < points[best].Value {
			best = len(points) - 1
		}
		return nil
	})
	return points, best, err
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, visit func(map[string]float64) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.axes) {
		return visit(current)
	}

	axis := g.axes[depth]
	for _, val := range axis.Values {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[axis.Name] = val

		if err := g.searchRecursive(ctx, depth+1, next, visit); err != nil {
			return err
		}
	}
	return nil
}

// PendulumObjective runs base from x0 with the swept parameters applied and
// returns the named metric. "theta" and "omega" override the initial state;
// other names go through SetParam.
func PendulumObjective(base physics.Pendulum, x0 dynamo.State, cfg sim.RunConfig, metric string) Objective {
	return func(ctx context.Context, params map[string]float64) (float64, error) {
		p, x := base, x0
		for name, v := range params {
			switch name {
			case "theta":
				x.Theta = v
			case "omega":
				x.Omega = v
			default:
				if err := p.SetParam(name, v); err != nil {
					return 0, err
				}
			}
		}

		result, err := sim.Run(ctx, p, x, cfg, metrics.Defaults(&p)...)
		if err != nil {
			return 0, err
		}
		val, ok := result.Metrics[metric]
		if !ok {
			return 0, fmt.Errorf("unknown metric %q", metric)
		}
		return val, nil
	}
}
