// Package flow traces paths through a vector field.
package flow

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Sampler is a vector field, noise.Field2 is the usual one.
type Sampler interface {
	Sample(p r2.Vec) r2.Vec
}

// Segment is one piece of a Path ending at End. For curved paths C1 and C2
// are the cubic control points; straight segments set them to the segment ends.
type Segment struct {
	C1, C2, End r2.Vec
}

// Path is an immutable run of one integration, starting at Start.
type Path struct {
	Start    r2.Vec
	Segments []Segment
	Curved   bool
}

// Len is the number of positions: the start plus one per segment.
func (p Path) Len() int {
	return 1 + len(p.Segments)
}

// Points returns the start followed by every segment end.
func (p Path) Points() []r2.Vec {
	pts := make([]r2.Vec, 0, p.Len())
	pts = append(pts, p.Start)
	for _, s := range p.Segments {
		pts = append(pts, s.End)
	}
	return pts
}

// End is the last position of the path.
func (p Path) End() r2.Vec {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].End
}

func line(from, to r2.Vec) Segment {
	return Segment{C1: from, C2: to, End: to}
}

// Bounds is an axis aligned rectangle, Min inclusive and Max exclusive.
// The zero Bounds is empty and means "no bounds" to the integrators.
type Bounds struct {
	Min, Max r2.Vec
}

// Rect returns the bounds of a w by h canvas with its origin at 0,0.
func Rect(w, h float64) Bounds {
	return Bounds{Max: r2.Vec{X: w, Y: h}}
}

// IsEmpty reports whether b has no area.
func (b Bounds) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Contains reports whether p is inside b.
func (b Bounds) Contains(p r2.Vec) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// allows is Contains with an empty Bounds letting everything through.
func (b Bounds) allows(p r2.Vec) bool {
	return b.IsEmpty() || b.Contains(p)
}
