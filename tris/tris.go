// Tris fills a grid of triangles with colors picked by a noise field, or at random.
package main

import (
	"flag"
	"fmt"

	"github.com/scottkirkwood/flowart"
	"github.com/scottkirkwood/flowart/config"
	"github.com/scottkirkwood/flowart/palette"
	"github.com/scottkirkwood/flowart/render"
)

var (
	seedFlag    = flag.String("seed", "", "Hex value for the seed to use")
	configFlag  = flag.String("config", "", "YAML file overriding the defaults")
	paletteFlag = flag.String("palette", "", "Embedded palette name, .hex file or image to take colors from")
	sideFlag    = flag.Float64("side", 0, "Triangle side in pixels")
	randomFlag  = flag.Bool("random", false, "Pick colors at random instead of from noise")
	showFlag    = flag.Bool("show_palette", false, "Only draw the palette")
	extFlag     = flag.String("ext", "", "Output format: .png, .svg or .pdf")
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
	if *paletteFlag != "" {
		cfg.Tris.Palette = *paletteFlag
	}
	if *sideFlag > 0 {
		cfg.Tris.Side = *sideFlag
	}
	if *randomFlag {
		cfg.Tris.Random = true
	}
	if *extFlag != "" {
		cfg.Output.Ext = *extFlag
	}

	w, h := float64(cfg.Canvas.Width), float64(cfg.Canvas.Height)
	ctx := flowart.NewContext(w, h)
	prefix := "tris-"
	if *showFlag {
		pal, err := palette.Load(cfg.Tris.Palette)
		if err != nil {
			fmt.Printf("Unable get palette: %v\n", err)
			return
		}
		fmt.Printf("Num colors %d\n%s", len(pal), palette.FormatHex(pal))
		render.Swatch(ctx, pal, w, h, 16)
		prefix = "palette-"
	} else {
		rng := g.Rand()
		opts, err := cfg.TrisOptions(rng)
		if err != nil {
			fmt.Printf("Bad config: %v\n", err)
			return
		}
		render.Tris(ctx, opts, rng)
	}

	fname, err := g.SafeWrite(ctx, cfg.Output.Prefix+prefix, cfg.Output.Ext)
	if err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s (seed %d)\n", fname, g.GetSeed())
}
