package flowart

import (
	"fmt"
	"image/color"
	"path"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Context is my abstraction for Canvas (or gg).
// Coordinates are given with the origin at the top left and y growing down,
// the same as gg, and flipped before they reach the canvas.
type Context struct {
	c             *canvas.Canvas
	ctx           *canvas.Context
	width, height float64
}

func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

func (ctx *Context) flip(y float64) float64 {
	return ctx.height - y
}

// Save writes the canvas to fname, the format is picked by its extension.
func (ctx *Context) Save(fname string) error {
	switch ext := path.Ext(fname); ext {
	case ".png":
		return ctx.WritePNG(fname)
	case ".svg":
		return ctx.WriteSVG(fname)
	case ".pdf":
		return ctx.WritePDF(fname)
	default:
		return fmt.Errorf("unsupported file format %s", ext)
	}
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(1.0))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

// Clear paints the whole canvas with col.
func (ctx *Context) Clear(col color.Color) {
	ctx.ctx.Push()
	ctx.ctx.SetFillColor(col)
	ctx.ctx.SetStrokeColor(canvas.Transparent)
	ctx.ctx.DrawPath(0, 0, canvas.Rectangle(ctx.width, ctx.height))
	ctx.ctx.Pop()
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// MoveTo moves the path to x,y without connecting the path. It starts a new independent subpath.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(x, ctx.flip(y))
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(x, ctx.flip(y))
}

// CubeTo adds a cubic Bézier path with control points cpx1,cpy1 and cpx2,cpy2 and end point x,y.
func (ctx *Context) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	ctx.ctx.CubeTo(cpx1, ctx.flip(cpy1), cpx2, ctx.flip(cpy2), x, ctx.flip(y))
}

// Circle strokes a circle of radius r around x,y without filling it.
func (ctx *Context) Circle(x, y, r float64) {
	ctx.ctx.Push()
	ctx.ctx.SetFillColor(canvas.Transparent)
	ctx.ctx.DrawPath(x, ctx.flip(y), canvas.Circle(r))
	ctx.ctx.Pop()
}

// FillRect draws a filled rectangle with its top left corner at x,y.
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.Push()
	ctx.ctx.SetStrokeColor(canvas.Transparent)
	ctx.ctx.DrawPath(x, ctx.flip(y+h), canvas.Rectangle(w, h))
	ctx.ctx.Pop()
}

// Fill fills the current path and resets it.
func (ctx *Context) Fill() {
	ctx.ctx.Fill()
}

// Stroke strokes the current path and resets it.
func (ctx *Context) Stroke() {
	ctx.ctx.Stroke()
}

// Close closes the current path
func (ctx *Context) Close() {
	ctx.ctx.Close()
}
