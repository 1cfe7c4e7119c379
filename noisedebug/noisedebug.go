// Noisedebug draws the raw output of a noise generator for debugging.
package main

import (
	"flag"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/scottkirkwood/flowart"
	"github.com/scottkirkwood/flowart/config"
	"github.com/scottkirkwood/flowart/noise"
	"github.com/scottkirkwood/flowart/render"
)

var (
	seedFlag   = flag.String("seed", "", "Hex value for the seed to use")
	configFlag = flag.String("config", "", "YAML file overriding the defaults")
	kindFlag   = flag.String("kind", "", "Noise kind: simplex, perlin or fbm-perlin")
	scaleFlag  = flag.Float64("scale", 0, "Noise scale, positions are divided by it")
	normFlag   = flag.Bool("norm", false, "Multiply the scale by the larger image side")
	flowFlag   = flag.Bool("flow", false, "Draw the flow field in red and blue instead")
)

func main() {
	flag.Parse()
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Printf("Unable to load config: %v\n", err)
		return
	}
	if *seedFlag == "" {
		*seedFlag = cfg.Seed
	}
	g, err := flowart.Init(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
		return
	}
	if *kindFlag != "" {
		if err := cfg.Noise.Kind.Set(*kindFlag); err != nil {
			fmt.Printf("%v\n", err)
			return
		}
	}
	if *scaleFlag > 0 {
		cfg.Noise.Scale = *scaleFlag
	}
	if *normFlag {
		cfg.Noise.Scale *= math.Max(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Bad config: %v\n", err)
		return
	}

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	rng := g.Rand()
	var m image.Image
	prefix := "noise-"
	if *flowFlag {
		m = render.FlowBackground(cfg.FlowField(rng), w, h)
		prefix = "flowbg-"
	} else {
		m = render.NoiseImage(noise.NewField(cfg.Noise.Kind, rng, cfg.Noise.Scale), w, h)
	}

	fname, err := g.SafeWrite(pngImage{m}, cfg.Output.Prefix+prefix+cfg.Noise.Kind.String()+"-", ".png")
	if err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s (seed %d)\n", fname, g.GetSeed())
}

// pngImage lets a plain image go through SafeWrite.
type pngImage struct {
	image.Image
}

func (p pngImage) Save(fname string) error {
	return gg.SavePNG(fname, p.Image)
}
