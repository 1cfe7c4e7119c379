// Package tess walks a grid of equilateral triangles covering a rectangle.
package tess

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Orientation of a cell.
type Orientation int

const (
	// Upright has its flat side on the anchor row: anchor, anchor+(side,0), anchor+(side/2,height).
	Upright Orientation = iota
	// Inverted shares the anchor and has its flat side one row down.
	Inverted
)

func (o Orientation) String() string {
	if o == Inverted {
		return "inverted"
	}
	return "upright"
}

// SamplePoint picks where a cell is sampled for its color.
type SamplePoint int

const (
	AtCentroid SamplePoint = iota
	AtAnchor
)

// ParseSamplePoint reads "centroid" or "anchor".
func ParseSamplePoint(s string) (SamplePoint, error) {
	switch strings.ToLower(s) {
	case "", "centroid":
		return AtCentroid, nil
	case "anchor":
		return AtAnchor, nil
	}
	return AtCentroid, fmt.Errorf("unknown sample point %q, want centroid or anchor", s)
}

// Cell is one triangle of the grid.
type Cell struct {
	I, J        int
	Orientation Orientation
	Anchor      r2.Vec
	Vertices    [3]r2.Vec
}

// Centroid is the mean of the vertices.
func (c Cell) Centroid() r2.Vec {
	v := c.Vertices
	return r2.Vec{X: (v[0].X + v[1].X + v[2].X) / 3, Y: (v[0].Y + v[1].Y + v[2].Y) / 3}
}

// Sample returns the point used to color the cell.
func (c Cell) Sample(at SamplePoint) r2.Vec {
	if at == AtAnchor {
		return c.Anchor
	}
	return c.Centroid()
}

// Area of the triangle.
func (c Cell) Area() float64 {
	v := c.Vertices
	return math.Abs(r2.Cross(r2.Sub(v[1], v[0]), r2.Sub(v[2], v[0]))) / 2
}

// Contains reports whether p is strictly inside the triangle.
func (c Cell) Contains(p r2.Vec) bool {
	v := c.Vertices
	d1 := r2.Cross(r2.Sub(v[1], v[0]), r2.Sub(p, v[0]))
	d2 := r2.Cross(r2.Sub(v[2], v[1]), r2.Sub(p, v[1]))
	d3 := r2.Cross(r2.Sub(v[0], v[2]), r2.Sub(p, v[2]))
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}

// Grid describes the tiling of a Width by Height canvas with triangles of
// the given Side. Margin extra anchors are added on the left and right and
// Margin extra rows at the bottom so partial edge triangles are drawn.
// Stagger shifts odd rows by half a side.
type Grid struct {
	Width, Height float64
	Side          float64
	Margin        int
	Stagger       bool
}

var errSide = errors.New("triangle side must be positive")

// Validate checks the grid can be walked.
func (g Grid) Validate() error {
	if g.Side <= 0 || math.IsNaN(g.Side) || math.IsInf(g.Side, 0) {
		return errSide
	}
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("canvas %vx%v must not be negative", g.Width, g.Height)
	}
	if g.Margin < 1 {
		return fmt.Errorf("margin %d must be at least 1 to cover the edges", g.Margin)
	}
	return nil
}

// RowHeight is the height of a triangle, side*sin(60°).
func (g Grid) RowHeight() float64 {
	return g.Side * math.Sin(math.Pi/3)
}

// Range returns the half open anchor ranges [iMin,iMax) and [0,jMax).
func (g Grid) Range() (iMin, iMax, jMax int) {
	iMin = -g.Margin
	iMax = int(math.Ceil(g.Width/g.Side)) + g.Margin
	jMax = int(math.Ceil(g.Height/g.RowHeight())) + g.Margin
	return iMin, iMax, jMax
}

// Anchor returns the canvas position of anchor i,j.
func (g Grid) Anchor(i, j int) r2.Vec {
	x := float64(i) * g.Side
	if g.Stagger && j%2 == 1 {
		x += g.Side / 2
	}
	return r2.Vec{X: x, Y: float64(j) * g.RowHeight()}
}

// Cells returns the upright and inverted cell of anchor i,j.
func (g Grid) Cells(i, j int) (upright, inverted Cell) {
	a := g.Anchor(i, j)
	half, h := g.Side/2, g.RowHeight()
	upright = Cell{I: i, J: j, Orientation: Upright, Anchor: a, Vertices: [3]r2.Vec{
		a,
		{X: a.X + g.Side, Y: a.Y},
		{X: a.X + half, Y: a.Y + h},
	}}
	inverted = Cell{I: i, J: j, Orientation: Inverted, Anchor: a, Vertices: [3]r2.Vec{
		a,
		{X: a.X + half, Y: a.Y + h},
		{X: a.X - half, Y: a.Y + h},
	}}
	return upright, inverted
}

// Each calls fn for every cell, upright before inverted, column by column.
// An invalid grid yields nothing.
func (g Grid) Each(fn func(Cell)) {
	if g.Validate() != nil {
		return
	}
	iMin, iMax, jMax := g.Range()
	for i := iMin; i < iMax; i++ {
		for j := 0; j < jMax; j++ {
			up, down := g.Cells(i, j)
			fn(up)
			fn(down)
		}
	}
}

// All collects Each into a slice.
func (g Grid) All() []Cell {
	var cells []Cell
	g.Each(func(c Cell) {
		cells = append(cells, c)
	})
	return cells
}
