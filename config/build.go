package config

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scottkirkwood/flowart/noise"
	"github.com/scottkirkwood/flowart/palette"
	"github.com/scottkirkwood/flowart/render"
	"github.com/scottkirkwood/flowart/tess"
)

// FlowField builds the flow field, drawing the x and y channel seeds from seeds.
func (c *Config) FlowField(seeds noise.Seeder) noise.Field2 {
	f := noise.NewField2(c.Noise.Kind, seeds)
	f.PosScale = c.Noise.Scale
	f.Normalize = c.Flow.Normalize
	f.Bias = r2.Vec{X: c.Flow.BiasX, Y: c.Flow.BiasY}
	return f
}

// WalkColors is the resolver used to color walks.
func (c *Config) WalkColors() (palette.Resolver, error) {
	cols := make([]color.Color, 0, len(c.Flow.Walks.Gradient))
	for _, hex := range c.Flow.Walks.Gradient {
		col, err := palette.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("flow.walks.gradient: %w", err)
		}
		cols = append(cols, col)
	}
	g, err := palette.EvenGradient(cols...)
	if err != nil {
		return nil, fmt.Errorf("flow.walks.gradient: %w", err)
	}
	if c.Flow.Walks.Take <= 0 {
		return g, nil
	}
	return palette.NewDiscrete(g.Take(c.Flow.Walks.Take))
}

// FlowOptions builds everything render.Flow needs. Seeds are drawn in a
// fixed order: flow x, flow y, then the color channel.
func (c *Config) FlowOptions(seeds noise.Seeder) (render.FlowOptions, error) {
	if err := c.Validate(); err != nil {
		return render.FlowOptions{}, err
	}
	bg, err := c.Background()
	if err != nil {
		return render.FlowOptions{}, fmt.Errorf("canvas.background: %w", err)
	}
	tailColor, err := optionalColor(c.Flow.Tails.Color)
	if err != nil {
		return render.FlowOptions{}, fmt.Errorf("flow.tails.color: %w", err)
	}
	if tailColor == nil {
		tailColor = color.Black
	}
	colors, err := c.WalkColors()
	if err != nil {
		return render.FlowOptions{}, err
	}

	field := c.FlowField(seeds)
	w := c.Flow.Walks
	return render.FlowOptions{
		Width:      float64(c.Canvas.Width),
		Height:     float64(c.Canvas.Height),
		Background: bg,
		Field:      field,
		Tails: render.Tails{
			Enabled:     c.Flow.Tails.Enabled,
			Stride:      c.Flow.Tails.Stride,
			Length:      c.Flow.Tails.Length,
			StrokeWidth: c.Flow.Tails.Width,
			Color:       tailColor,
		},
		Walks: render.Walks{
			Enabled:     w.Enabled,
			Euler:       w.Euler,
			Count:       w.Count,
			Steps:       w.Steps,
			StepSize:    w.StepSize,
			StrokeWidth: w.Width,
			ColorField:  noise.NewField(noise.Simplex, seeds, c.Noise.Scale*w.ColorScale),
			ColorGain:   w.ColorGain,
			Colors:      colors,
		},
		Workers: c.Flow.Workers,
	}, nil
}

// TrisOptions builds everything render.Tris needs. The height field seed is
// only drawn when the colors are not random.
func (c *Config) TrisOptions(seeds noise.Seeder) (render.TrisOptions, error) {
	if err := c.Validate(); err != nil {
		return render.TrisOptions{}, err
	}
	bg, err := c.Background()
	if err != nil {
		return render.TrisOptions{}, fmt.Errorf("canvas.background: %w", err)
	}
	at, err := tess.ParseSamplePoint(c.Tris.SampleAt)
	if err != nil {
		return render.TrisOptions{}, err
	}
	pal, err := palette.Load(c.Tris.Palette)
	if err != nil {
		return render.TrisOptions{}, fmt.Errorf("tris.palette: %w", err)
	}
	colors, err := palette.NewDiscrete(pal)
	if err != nil {
		return render.TrisOptions{}, fmt.Errorf("tris.palette: %w", err)
	}
	opts := render.TrisOptions{
		Grid:       c.Grid(),
		SampleAt:   at,
		Background: bg,
		Colors:     colors,
	}
	if !c.Tris.Random {
		opts.Heights = noise.NewField(c.Noise.Kind, seeds, c.Tris.NoiseScale)
	}
	return opts, nil
}
