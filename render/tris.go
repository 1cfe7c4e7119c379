package render

import (
	"image/color"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scottkirkwood/flowart/palette"
	"github.com/scottkirkwood/flowart/tess"
)

// HeightSampler is a scalar field, noise.Field is one.
type HeightSampler interface {
	Sample01(p r2.Vec) float64
}

// TrisOptions configures a triangle grid.
// With a nil Heights every cell gets an independent random value instead.
type TrisOptions struct {
	Grid       tess.Grid
	SampleAt   tess.SamplePoint
	Background color.Color
	Heights    HeightSampler
	Colors     palette.Resolver
}

// Tris fills every cell of the grid and returns how many were drawn.
func Tris(c Canvas, opts TrisOptions, rng *rand.Rand) int {
	if opts.Background != nil {
		c.Clear(opts.Background)
	}
	n := 0
	opts.Grid.Each(func(cell tess.Cell) {
		var v float64
		if opts.Heights != nil {
			v = opts.Heights.Sample01(cell.Sample(opts.SampleAt))
		} else {
			v = rng.Float64()
		}
		FillCell(c, cell, opts.Colors.Resolve(v))
		n++
	})
	Logf("Filled %d triangles", n)
	return n
}
