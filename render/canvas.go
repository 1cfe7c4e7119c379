// Package render draws flow fields and triangle grids onto a Canvas.
package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scottkirkwood/flowart/flow"
	"github.com/scottkirkwood/flowart/tess"
)

// Canvas is the drawing surface. flowart.Context and flowart.Raster implement it.
// A Canvas is not safe for concurrent use; every driver draws from one goroutine.
type Canvas interface {
	Clear(col color.Color)
	SetFillColor(col color.Color)
	SetStrokeColor(col color.Color)
	SetStrokeWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64)
	Circle(x, y, r float64)
	FillRect(x, y, w, h float64)
	Close()
	Fill()
	Stroke()
}

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination, nil means stdout.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// StrokePath strokes p. A path without segments draws nothing.
func StrokePath(c Canvas, p flow.Path, col color.Color, width float64) {
	if len(p.Segments) == 0 {
		return
	}
	c.SetStrokeColor(col)
	c.SetStrokeWidth(width)
	c.MoveTo(p.Start.X, p.Start.Y)
	for _, s := range p.Segments {
		if p.Curved {
			c.CubeTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.End.X, s.End.Y)
		} else {
			c.LineTo(s.End.X, s.End.Y)
		}
	}
	c.Stroke()
}

// FillPolygon fills the closed polygon through pts.
func FillPolygon(c Canvas, pts []r2.Vec, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.SetFillColor(col)
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Close()
	c.Fill()
}

// FillCell fills one triangle of a grid.
func FillCell(c Canvas, cell tess.Cell, col color.Color) {
	FillPolygon(c, cell.Vertices[:], col)
}
