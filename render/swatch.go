package render

import (
	"image/color"

	"github.com/scottkirkwood/flowart"
)

// Swatch lays out colors in a grid of rows filling w by h.
// rows <= 0 puts every color on its own row.
func Swatch(c Canvas, colors color.Palette, w, h float64, rows int) {
	if len(colors) == 0 {
		return
	}
	if rows <= 0 {
		rows = len(colors)
	}
	rows = flowart.ClampInt(rows, 1, len(colors))
	cols := (len(colors) + rows - 1) / rows
	dx := w / float64(cols)
	dy := h / float64(rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			index := y*cols + x
			if index >= len(colors) {
				return
			}
			c.SetFillColor(colors[index])
			c.FillRect(float64(x)*dx, float64(y)*dy, dx, dy)
		}
	}
}
