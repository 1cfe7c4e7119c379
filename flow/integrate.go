package flow

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Tail samples f once at start and returns the straight two point path
// start, start+d*length. A zero flow gives a zero length segment.
func Tail(f Sampler, start r2.Vec, length float64) Path {
	d := f.Sample(start)
	end := r2.Add(start, r2.Scale(length, d))
	return Path{Start: start, Segments: []Segment{line(start, end)}}
}

// WalkConfig describes a multi-step integration.
type WalkConfig struct {
	Steps    int
	StepSize float64
	// Bounds stops the walk once the cursor leaves it. Empty means unbounded.
	Bounds Bounds
}

func advance(f Sampler, p r2.Vec, stepSize float64) r2.Vec {
	return r2.Add(p, r2.Scale(stepSize, f.Sample(p)))
}

// Walk traces a smooth curve through f. Each step takes three chained samples
// and emits one cubic segment from the cursor through the first two points to
// the third. It stops after cfg.Steps segments or as soon as the cursor is
// outside cfg.Bounds, so a start outside the bounds yields just the start.
func Walk(f Sampler, start r2.Vec, cfg WalkConfig) Path {
	p := Path{Start: start, Curved: true}
	if cfg.Steps > 0 {
		p.Segments = make([]Segment, 0, cfg.Steps)
	}
	cur := start
	for i := 0; i < cfg.Steps; i++ {
		if !cfg.Bounds.allows(cur) {
			break
		}
		c1 := advance(f, cur, cfg.StepSize)
		c2 := advance(f, c1, cfg.StepSize)
		end := advance(f, c2, cfg.StepSize)
		p.Segments = append(p.Segments, Segment{C1: c1, C2: c2, End: end})
		cur = end
	}
	return p
}

// Trace is the plain Euler version of Walk: one sample per straight segment.
func Trace(f Sampler, start r2.Vec, cfg WalkConfig) Path {
	p := Path{Start: start}
	if cfg.Steps > 0 {
		p.Segments = make([]Segment, 0, cfg.Steps)
	}
	cur := start
	for i := 0; i < cfg.Steps; i++ {
		if !cfg.Bounds.allows(cur) {
			break
		}
		next := advance(f, cur, cfg.StepSize)
		p.Segments = append(p.Segments, line(cur, next))
		cur = next
	}
	return p
}
