package flowart

import (
	"fmt"
	"image"
	"image/color"
	"path"

	"github.com/fogleman/gg"
)

// Raster is the pixel backed twin of Context, drawn with gg.
// It is used when the picture is needed in memory, e.g. by the viewer.
type Raster struct {
	dc     *gg.Context
	fill   color.Color
	stroke color.Color
}

func NewRaster(width, height int) *Raster {
	return &Raster{
		dc:     gg.NewContext(width, height),
		fill:   color.Black,
		stroke: color.Black,
	}
}

// Image returns the backing image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// Save writes a PNG file, the only format a Raster knows.
func (r *Raster) Save(fname string) error {
	if ext := path.Ext(fname); ext != ".png" {
		return fmt.Errorf("unsupported file format %s", ext)
	}
	return r.dc.SavePNG(fname)
}

// Clear paints the whole image with col.
func (r *Raster) Clear(col color.Color) {
	r.dc.SetColor(col)
	r.dc.Clear()
}

func (r *Raster) SetFillColor(col color.Color) {
	r.fill = col
}

func (r *Raster) SetStrokeColor(col color.Color) {
	r.stroke = col
}

func (r *Raster) SetStrokeWidth(width float64) {
	r.dc.SetLineWidth(width)
}

func (r *Raster) MoveTo(x, y float64) {
	r.dc.MoveTo(x, y)
}

func (r *Raster) LineTo(x, y float64) {
	r.dc.LineTo(x, y)
}

func (r *Raster) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.dc.CubicTo(cpx1, cpy1, cpx2, cpy2, x, y)
}

// Circle strokes a circle of radius r around x,y.
func (r *Raster) Circle(x, y, radius float64) {
	r.dc.NewSubPath()
	r.dc.DrawCircle(x, y, radius)
	r.Stroke()
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.NewSubPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.Fill()
}

// Fill fills the current path and clears it.
func (r *Raster) Fill() {
	r.dc.SetColor(r.fill)
	r.dc.Fill()
}

// Stroke strokes the current path and clears it.
func (r *Raster) Stroke() {
	r.dc.SetColor(r.stroke)
	r.dc.Stroke()
}

func (r *Raster) Close() {
	r.dc.ClosePath()
}
