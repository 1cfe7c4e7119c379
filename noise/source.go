// Package noise turns 2D noise generators into scalar and vector fields.
package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a noise generator. Eval2 is deterministic for a given generator
// and should return values in [-1, 1]; fields clamp anything outside.
type Source interface {
	Eval2(x, y float64) float64
}

// Constant is a Source returning the same value everywhere.
type Constant float64

func (c Constant) Eval2(x, y float64) float64 {
	return float64(c)
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(x, y float64) float64

func (f SourceFunc) Eval2(x, y float64) float64 {
	return f(x, y)
}

// Kind selects a noise generator.
type Kind int

const (
	Simplex Kind = iota
	Perlin
	FbmPerlin
)

var kindNames = map[Kind]string{
	Simplex:   "simplex",
	Perlin:    "perlin",
	FbmPerlin: "fbm-perlin",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return Simplex, fmt.Errorf("unknown noise kind %q, want simplex, perlin or fbm-perlin", s)
}

// Set implements flag.Value.
func (k *Kind) Set(s string) error {
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UnmarshalText lets a Kind be read from YAML.
func (k *Kind) UnmarshalText(text []byte) error {
	return k.Set(string(text))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

const (
	perlinAlpha  = 2
	perlinBeta   = 2
	fbmOctaves   = 4
	perlinSingle = 1
)

// New builds the generator for seed.
func (k Kind) New(seed uint32) Source {
	switch k {
	case Perlin:
		return newPerlin(perlinSingle, seed)
	case FbmPerlin:
		return newPerlin(fbmOctaves, seed)
	default:
		return opensimplex.New(int64(seed))
	}
}

// perlinSource rescales go-perlin's octave sum back to roughly [-1, 1].
type perlinSource struct {
	p    *perlin.Perlin
	norm float64
}

func newPerlin(octaves int32, seed uint32) perlinSource {
	norm, amp := 0.0, 1.0
	for i := int32(0); i < octaves; i++ {
		norm += amp
		amp /= perlinAlpha
	}
	return perlinSource{
		p:    perlin.NewPerlin(perlinAlpha, perlinBeta, octaves, int64(seed)),
		norm: norm,
	}
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y) / s.norm
}
