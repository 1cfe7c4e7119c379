// Regart shows a rendering in a window and redraws it whenever the config
// or palette file is saved. Space redraws with a new seed, S saves the
// current picture, Escape or Q quits.
package main

import (
	"flag"
	"fmt"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/scottkirkwood/flowart"
	"github.com/scottkirkwood/flowart/config"
	"github.com/scottkirkwood/flowart/render"
)

var (
	seedFlag   = flag.String("seed", "", "Hex value for the seed to use")
	configFlag = flag.String("config", "", "YAML file to watch and render")
	modeFlag   = flag.String("mode", "flow", "What to draw: flow or tris")
)

// reloadEvent is sent to the window when a watched file changed.
type reloadEvent struct {
	name string
}

var (
	fileCrc = make(map[string]uint64)
	crcTab  = crc64.MakeTable(crc64.ECMA)
)

func main() {
	flag.Parse()
	seed, err := flowart.Init(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
		return
	}
	if *modeFlag != "flow" && *modeFlag != "tris" {
		fmt.Printf("Unknown mode %q, want flow or tris\n", *modeFlag)
		return
	}

	driver.Main(func(s screen.Screen) {
		art, err := renderArt(*configFlag, *modeFlag, seed)
		if err != nil {
			fmt.Printf("Unable to render: %v\n", err)
			return
		}
		rect := art.Image().Bounds()
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  rect.Dx(),
			Height: rect.Dy(),
			Title:  "regart",
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		defer w.Release()

		if *configFlag != "" {
			watcher, err := watch(*configFlag, w)
			if err != nil {
				fmt.Printf("Problem watching %s: %v\n", *configFlag, err)
			} else {
				defer watcher.Close()
			}
		}

		var sz size.Event
		for {
			switch e := w.NextEvent().(type) {
			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeSpacebar:
					seed = flowart.TimeSeed()
					art = redraw(art, seed)
					w.Send(paint.Event{})
				case key.CodeS:
					if fname, err := seed.SafeWrite(art, "regart-", ".png"); err != nil {
						fmt.Printf("Unable write image: %v\n", err)
					} else {
						fmt.Printf("Wrote %s (seed %d)\n", fname, seed.GetSeed())
					}
				}

			case reloadEvent:
				fmt.Printf("%s changed, redrawing\n", e.name)
				art = redraw(art, seed)
				w.Send(paint.Event{})

			case paint.Event:
				if err := show(s, w, art.Image(), sz); err != nil {
					fmt.Println(err)
					return
				}
				w.Publish()

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				fmt.Printf("Screen error: %v\n", e)
				return

			case mouse.Event:
			}
		}
	})
}

// redraw keeps the previous picture when the new one cannot be made,
// so a half edited config does not close the window.
func redraw(prev *flowart.Raster, seed flowart.Seed) *flowart.Raster {
	fmt.Printf("Drawing with seed %s\n", seed)
	art, err := renderArt(*configFlag, *modeFlag, seed)
	if err != nil {
		fmt.Printf("Unable to render: %v\n", err)
		return prev
	}
	return art
}

func renderArt(configPath, mode string, seed flowart.Seed) (*flowart.Raster, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	rng := seed.Rand()
	art := flowart.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height)
	if mode == "tris" {
		opts, err := cfg.TrisOptions(rng)
		if err != nil {
			return nil, err
		}
		render.Tris(art, opts, rng)
		return art, nil
	}
	opts, err := cfg.FlowOptions(rng)
	if err != nil {
		return nil, err
	}
	render.Flow(art, opts, rng)
	return art, nil
}

func show(s screen.Screen, w screen.Window, img image.Image, sz size.Event) error {
	b, err := s.NewBuffer(img.Bounds().Size())
	if err != nil {
		return err
	}
	defer b.Release()
	draw.Draw(b.RGBA(), b.Bounds(), img, img.Bounds().Min, draw.Src)
	dp := centerOffset(img, sz.WidthPx, sz.HeightPx)
	if dp != (image.Point{}) {
		w.Fill(sz.Bounds(), color.Black, draw.Src)
	}
	w.Upload(dp, b, b.Bounds())
	return nil
}

// centerOffset is where img goes so it sits in the middle of a canWidth by
// canHeight window; (0, 0) when it does not fit.
func centerOffset(img image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if img.Bounds().Dx() < canWidth {
		xmargin = (canWidth - img.Bounds().Dx()) / 2
	}
	if img.Bounds().Dy() < canHeight {
		ymargin = (canHeight - img.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}

// watch sends a reloadEvent to w whenever the config file, or the palette
// file it names, really changes. The folder is watched because editors
// often replace files instead of writing them.
func watch(configPath string, w screen.Window) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	files := map[string]bool{filepath.Clean(configPath): true}
	if cfg, err := config.Load(configPath); err == nil && cfg.Tris.Palette != "" {
		if _, err := os.Stat(cfg.Tris.Palette); err == nil {
			files[filepath.Clean(cfg.Tris.Palette)] = true
		}
	}
	dirs := map[string]bool{}
	for f := range files {
		fileChanged(f)
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
		fmt.Printf("Monitoring folder %q\n", dir)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Clean(event.Name)
				if !files[name] || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if fileChanged(name) {
					w.Send(reloadEvent{name: name})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Println("ERROR", err)
			}
		}
	}()
	return watcher, nil
}

// fileChanged reports whether the contents of fname differ from last time.
// It is only called from one goroutine at a time.
func fileChanged(fname string) bool {
	data, err := os.ReadFile(fname)
	if err != nil {
		fmt.Printf("Readfile error %q: %v\n", fname, err)
		return false
	}
	sum := crc64.Checksum(data, crcTab)
	if fileCrc[fname] == sum {
		return false
	}
	fileCrc[fname] = sum
	return true
}
