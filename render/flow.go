package render

import (
	"image/color"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scottkirkwood/flowart"
	"github.com/scottkirkwood/flowart/flow"
	"github.com/scottkirkwood/flowart/noise"
	"github.com/scottkirkwood/flowart/palette"
)

// Tails draws one short straight tail per lattice point.
type Tails struct {
	Enabled     bool
	Stride      float64
	Length      float64
	StrokeWidth float64
	Color       color.Color
}

// Walks draws Count curves from random starts.
//
// Each walk is colored by sampling ColorField at its start, multiplying by
// ColorGain and clamping to [0,1] before it goes through Colors.
type Walks struct {
	Enabled     bool
	Euler       bool // straight Euler steps instead of cubic segments
	Count       int
	Steps       int
	StepSize    float64
	StrokeWidth float64
	ColorField  noise.Field
	ColorGain   float64
	Colors      palette.Resolver
}

// FlowOptions holds everything Flow needs; it is read only while drawing.
type FlowOptions struct {
	Width, Height float64
	Background    color.Color
	Field         noise.Field2
	Tails         Tails
	Walks         Walks
	Workers       int
}

// Stat describes one drawn walk.
type Stat struct {
	Index      int     `csv:"index"`
	StartX     float64 `csv:"start_x"`
	StartY     float64 `csv:"start_y"`
	EndX       float64 `csv:"end_x"`
	EndY       float64 `csv:"end_y"`
	Points     int     `csv:"points"`
	ColorValue float64 `csv:"color_value"`
}

// ColorValue maps the color channel at p to [0,1].
func (w Walks) ColorValue(p r2.Vec) float64 {
	return flowart.Clamp(w.ColorField.Sample(p)*w.ColorGain, 0, 1)
}

// Flow draws the background, the tails and then the walks.
// Walk starts are drawn from rng; paths are integrated in parallel and
// stroked in start order.
func Flow(c Canvas, opts FlowOptions, rng *rand.Rand) []Stat {
	if opts.Background != nil {
		c.Clear(opts.Background)
	}
	if opts.Tails.Enabled {
		drawTails(c, opts)
	}
	if !opts.Walks.Enabled || opts.Walks.Count <= 0 {
		return nil
	}

	w := opts.Walks
	bounds := flow.Rect(opts.Width, opts.Height)
	starts := flow.RandomStarts(rng, w.Count, bounds)
	integrate := flow.Walk
	if w.Euler {
		integrate = flow.Trace
	}
	cfg := flow.WalkConfig{Steps: w.Steps, StepSize: w.StepSize, Bounds: bounds}
	Logf("Tracing %d walks of %d steps", len(starts), w.Steps)
	paths := flow.WalkAll(opts.Field, starts, cfg, integrate, opts.Workers)

	stats := make([]Stat, 0, len(paths))
	for i, p := range paths {
		v := w.ColorValue(p.Start)
		StrokePath(c, p, w.Colors.Resolve(v), w.StrokeWidth)
		end := p.End()
		stats = append(stats, Stat{
			Index:      i,
			StartX:     p.Start.X,
			StartY:     p.Start.Y,
			EndX:       end.X,
			EndY:       end.Y,
			Points:     p.Len(),
			ColorValue: v,
		})
	}
	return stats
}

func drawTails(c Canvas, opts FlowOptions) {
	t := opts.Tails
	pts := flow.TailGrid(opts.Width, opts.Height, t.Stride)
	Logf("Drawing %d tails", len(pts))
	for _, p := range pts {
		c.SetStrokeColor(t.Color)
		c.SetStrokeWidth(t.StrokeWidth)
		c.Circle(p.X, p.Y, t.Length/8)
		StrokePath(c, flow.Tail(opts.Field, p, t.Length), t.Color, t.StrokeWidth)
	}
}
