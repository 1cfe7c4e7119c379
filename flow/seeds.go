package flow

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scottkirkwood/flowart"
)

// TailGrid returns the interior points of a stride spaced lattice over a
// w by h canvas. Points on the top and left edges are skipped.
func TailGrid(w, h, stride float64) []r2.Vec {
	if stride <= 0 {
		return nil
	}
	var pts []r2.Vec
	for i := 1; float64(i)*stride < w; i++ {
		for j := 1; float64(j)*stride < h; j++ {
			pts = append(pts, r2.Vec{X: float64(i) * stride, Y: float64(j) * stride})
		}
	}
	return pts
}

// Float64er is the part of a random generator RandomStarts needs.
type Float64er interface {
	Float64() float64
}

// RandomStarts draws n points uniformly from b.
func RandomStarts(rng Float64er, n int, b Bounds) []r2.Vec {
	pts := make([]r2.Vec, 0, n)
	for i := 0; i < n; i++ {
		x := flowart.Lerp(b.Min.X, b.Max.X, rng.Float64())
		y := flowart.Lerp(b.Min.Y, b.Max.Y, rng.Float64())
		pts = append(pts, r2.Vec{X: x, Y: y})
	}
	return pts
}

// Integrator is Walk, Trace or anything shaped like them.
type Integrator func(f Sampler, start r2.Vec, cfg WalkConfig) Path

// WalkAll runs integrate from every start on up to workers goroutines.
// The field is only read, so it is shared; paths come back in start order.
// workers <= 0 uses GOMAXPROCS.
func WalkAll(f Sampler, starts []r2.Vec, cfg WalkConfig, integrate Integrator, workers int) []Path {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	paths := make([]Path, len(starts))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				paths[i] = integrate(f, starts[i], cfg)
			}
		}()
	}
	for i := range starts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return paths
}
