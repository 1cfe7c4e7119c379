package noise

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Field2 is a vector noise field made of two independent scalar channels.
//
// Sample divides the position by PosScale, evaluates both channels, makes the
// result unit length when Normalize is set and the vector is not zero, and
// only then adds Bias. The bias is a constant drift and is never normalized,
// so a normalized field is not unit length once Bias is non-zero.
type Field2 struct {
	X, Y      Field
	PosScale  float64
	Normalize bool
	Bias      r2.Vec
}

// NewField2 draws the x channel seed and then the y channel seed from seeds.
func NewField2(kind Kind, seeds Seeder) Field2 {
	return Field2{
		X:        Field{Source: kind.New(seeds.Uint32()), Scale: 1},
		Y:        Field{Source: kind.New(seeds.Uint32()), Scale: 1},
		PosScale: 1,
	}
}

// Raw returns the channel values at p before normalization and bias.
func (f Field2) Raw(p r2.Vec) r2.Vec {
	s := f.PosScale
	if s <= 0 {
		s = 1
	}
	q := r2.Vec{X: p.X / s, Y: p.Y / s}
	return r2.Vec{X: f.X.Sample(q), Y: f.Y.Sample(q)}
}

// Sample returns the flow vector at p.
func (f Field2) Sample(p r2.Vec) r2.Vec {
	v := f.Raw(p)
	if f.Normalize {
		if n := math.Hypot(v.X, v.Y); n > 0 {
			v = r2.Vec{X: v.X / n, Y: v.Y / n}
		}
	}
	return r2.Add(v, f.Bias)
}
