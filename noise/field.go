package noise

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scottkirkwood/flowart"
)

// Seeder hands out generator seeds. *rand.Rand from math/rand/v2 is one.
type Seeder interface {
	Uint32() uint32
}

// Field is a scalar noise field. Positions are divided by Scale before they
// reach the Source, so a larger Scale gives smoother, larger features.
// A Scale <= 0 is treated as 1.
type Field struct {
	Source Source
	Scale  float64
}

// NewField builds a Field of the given kind with a seed drawn from seeds.
func NewField(kind Kind, seeds Seeder, scale float64) Field {
	return Field{Source: kind.New(seeds.Uint32()), Scale: scale}
}

// Sample returns the field value at p, always in [-1, 1].
func (f Field) Sample(p r2.Vec) float64 {
	s := f.Scale
	if s <= 0 {
		s = 1
	}
	return flowart.Clamp(f.Source.Eval2(p.X/s, p.Y/s), -1, 1)
}

// Sample01 maps Sample onto [0, 1].
func (f Field) Sample01(p r2.Vec) float64 {
	return (f.Sample(p) + 1) / 2
}
