package render

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scottkirkwood/flowart"
	"github.com/scottkirkwood/flowart/flow"
)

// ScalarSampler is a scalar field returning values in [-1,1].
type ScalarSampler interface {
	Sample(p r2.Vec) float64
}

func toByte(v float64) uint8 {
	return uint8(flowart.Clamp((v+1)/2*256, 0, 255))
}

// NoiseImage paints f as grayscale, sampling each pixel at its top left corner.
func NoiseImage(f ScalarSampler, w, h int) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := f.Sample(r2.Vec{X: float64(x), Y: float64(y)})
			m.SetGray(x, y, color.Gray{Y: toByte(v)})
		}
	}
	return m
}

// FlowBackground paints a vector field with x in red and y in blue.
func FlowBackground(f flow.Sampler, w, h int) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := f.Sample(r2.Vec{X: float64(x), Y: float64(y)})
			m.SetRGBA(x, y, color.RGBA{R: toByte(v.X), B: toByte(v.Y), A: 0xff})
		}
	}
	return m
}
