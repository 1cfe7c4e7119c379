// Package palette maps scalar values in [0,1] to colors.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/scottkirkwood/flowart"
)

var (
	// ErrEmpty is returned when a palette or gradient has no colors.
	ErrEmpty = errors.New("palette is empty")
	// ErrStopOrder is returned when gradient stop positions decrease.
	ErrStopOrder = errors.New("gradient stops must not decrease")
	// ErrTransparent is returned for a gradient color with zero alpha.
	ErrTransparent = errors.New("color is fully transparent")
)

// Resolver turns a value, normally in [0,1], into a color.
type Resolver interface {
	Resolve(v float64) color.Color
}

// Discrete picks one of a fixed list of colors.
type Discrete struct {
	colors color.Palette
}

// NewDiscrete fails when colors is empty.
func NewDiscrete(colors color.Palette) (*Discrete, error) {
	if len(colors) == 0 {
		return nil, ErrEmpty
	}
	return &Discrete{colors: append(color.Palette(nil), colors...)}, nil
}

// Len is the number of colors.
func (d *Discrete) Len() int {
	return len(d.colors)
}

// Colors returns a copy of the colors.
func (d *Discrete) Colors() color.Palette {
	return append(color.Palette(nil), d.colors...)
}

// Index is floor(v*len) clamped to a valid index, NaN maps to 0.
func (d *Discrete) Index(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	f := math.Floor(v * float64(len(d.colors)))
	if f < 0 {
		return 0
	}
	if f >= float64(len(d.colors)) {
		return len(d.colors) - 1
	}
	return int(f)
}

func (d *Discrete) Resolve(v float64) color.Color {
	return d.colors[d.Index(v)]
}

// Stop is one color of a Gradient, placed at Position.
type Stop struct {
	Color    colorful.Color
	Position float64
}

// Gradient interpolates linearly between stops, channel by channel.
// Values before the first or after the last stop get the end colors.
type Gradient struct {
	stops []Stop
}

// NewGradient fails on no stops or decreasing positions.
func NewGradient(stops []Stop) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, ErrEmpty
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Position < stops[i-1].Position {
			return nil, fmt.Errorf("%w: stop %d at %v follows %v", ErrStopOrder, i, stops[i].Position, stops[i-1].Position)
		}
	}
	return &Gradient{stops: append([]Stop(nil), stops...)}, nil
}

// EvenGradient spreads colors evenly over [0,1].
func EvenGradient(colors ...color.Color) (*Gradient, error) {
	if len(colors) == 0 {
		return nil, ErrEmpty
	}
	stops := make([]Stop, len(colors))
	for i, col := range colors {
		c, ok := colorful.MakeColor(col)
		if !ok {
			return nil, fmt.Errorf("%w: gradient color %d", ErrTransparent, i)
		}
		stops[i].Color = c
		if len(colors) > 1 {
			stops[i].Position = float64(i) / float64(len(colors)-1)
		}
	}
	return NewGradient(stops)
}

// Stops returns a copy of the stops.
func (g *Gradient) Stops() []Stop {
	return append([]Stop(nil), g.stops...)
}

// At returns the interpolated color at v.
func (g *Gradient) At(v float64) colorful.Color {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if math.IsNaN(v) || v <= first.Position {
		return first.Color
	}
	if v >= last.Position {
		return last.Color
	}
	// First stop strictly after v; the one before it is at or below v.
	hi := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Position > v
	})
	a, b := g.stops[hi-1], g.stops[hi]
	if v == a.Position {
		return a.Color
	}
	t := flowart.Unlerp(a.Position, b.Position, v)
	return a.Color.BlendRgb(b.Color, t).Clamped()
}

func (g *Gradient) Resolve(v float64) color.Color {
	return g.At(v)
}

// Take samples n evenly spaced colors from the gradient, both ends included.
func (g *Gradient) Take(n int) color.Palette {
	pal := make(color.Palette, 0, n)
	for i := 0; i < n; i++ {
		v := 0.0
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		pal = append(pal, toRGBA(g.At(v)))
	}
	return pal
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
