// Flowwalk traces curves through a noise flow field.
// Inspired by Tyler Hobbs, "Flow Fields" (tylerxhobbs.com/essays/2020/flow-fields)
package main

import (
	"flag"
	"fmt"

	"github.com/scottkirkwood/flowart"
	"github.com/scottkirkwood/flowart/config"
	"github.com/scottkirkwood/flowart/render"
)

var (
	seedFlag   = flag.String("seed", "", "Hex value for the seed to use")
	configFlag = flag.String("config", "", "YAML file overriding the defaults")
	extFlag    = flag.String("ext", "", "Output format: .png, .svg or .pdf")
	statsFlag  = flag.String("stats", "", "Write one CSV row per walk to this file")
	tailsFlag  = flag.Bool("tails", false, "Draw flow tails on a grid")
	eulerFlag  = flag.Bool("euler", false, "Trace straight Euler steps instead of curves")
	rasterFlag = flag.Bool("raster", false, "Draw with gg instead of the vector canvas")
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
	if *tailsFlag {
		cfg.Flow.Tails.Enabled = true
	}
	if *eulerFlag {
		cfg.Flow.Walks.Euler = true
	}
	if *extFlag != "" {
		cfg.Output.Ext = *extFlag
	}

	rng := g.Rand()
	opts, err := cfg.FlowOptions(rng)
	if err != nil {
		fmt.Printf("Bad config: %v\n", err)
		return
	}

	var ctx interface {
		render.Canvas
		flowart.Saver
	}
	if *rasterFlag {
		ctx = flowart.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height)
	} else {
		ctx = flowart.NewContext(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	}
	stats := render.Flow(ctx, opts, rng)

	fname, err := g.SafeWrite(ctx, cfg.Output.Prefix+"flowwalk-", cfg.Output.Ext)
	if err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s (seed %d)\n", fname, g.GetSeed())
	if *statsFlag != "" {
		if err := render.SaveStats(*statsFlag, stats); err != nil {
			fmt.Printf("Unable write stats: %v\n", err)
			return
		}
		fmt.Printf("Wrote %d walks to %s\n", len(stats), *statsFlag)
	}
}
