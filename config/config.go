// Package config provides configuration loading for the renderers.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scottkirkwood/flowart/noise"
	"github.com/scottkirkwood/flowart/palette"
	"github.com/scottkirkwood/flowart/tess"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all rendering parameters.
type Config struct {
	Seed   string       `yaml:"seed"`
	Canvas CanvasConfig `yaml:"canvas"`
	Noise  NoiseConfig  `yaml:"noise"`
	Flow   FlowConfig   `yaml:"flow"`
	Tris   TrisConfig   `yaml:"tris"`
	Output OutputConfig `yaml:"output"`
}

// CanvasConfig is the picture size in pixels and its background.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // hex, empty for none
}

// NoiseConfig selects the generator and how far positions are scaled down.
type NoiseConfig struct {
	Kind  noise.Kind `yaml:"kind"`
	Scale float64    `yaml:"scale"`
}

// FlowConfig holds the flow field parameters.
type FlowConfig struct {
	BiasX     float64     `yaml:"bias_x"`
	BiasY     float64     `yaml:"bias_y"`
	Normalize bool        `yaml:"normalize"`
	Workers   int         `yaml:"workers"`
	Tails     TailsConfig `yaml:"tails"`
	Walks     WalksConfig `yaml:"walks"`
}

type TailsConfig struct {
	Enabled bool    `yaml:"enabled"`
	Stride  float64 `yaml:"stride"`
	Length  float64 `yaml:"length"`
	Width   float64 `yaml:"width"`
	Color   string  `yaml:"color"`
}

type WalksConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Euler      bool     `yaml:"euler"`
	Count      int      `yaml:"count"`
	Steps      int      `yaml:"steps"`
	StepSize   float64  `yaml:"step_size"`
	Width      float64  `yaml:"width"`
	ColorScale float64  `yaml:"color_scale"` // multiplies noise.scale for the color channel
	ColorGain  float64  `yaml:"color_gain"`
	Gradient   []string `yaml:"gradient"`
	Take       int      `yaml:"take"` // 0 keeps the gradient continuous
}

type TrisConfig struct {
	Side       float64 `yaml:"side"`
	Margin     int     `yaml:"margin"`
	Stagger    bool    `yaml:"stagger"`
	SampleAt   string  `yaml:"sample_at"`
	Random     bool    `yaml:"random"`
	NoiseScale float64 `yaml:"noise_scale"`
	Palette    string  `yaml:"palette"` // embedded name, .hex file or image
}

type OutputConfig struct {
	Prefix string `yaml:"prefix"`
	Ext    string `yaml:"ext"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be rendered.
func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	case c.Noise.Scale <= 0:
		return fmt.Errorf("noise.scale %v must be positive", c.Noise.Scale)
	case c.Flow.Tails.Enabled && c.Flow.Tails.Stride <= 0:
		return fmt.Errorf("flow.tails.stride %v must be positive", c.Flow.Tails.Stride)
	case c.Flow.Walks.Steps < 0 || c.Flow.Walks.Count < 0:
		return fmt.Errorf("flow.walks count %d and steps %d must not be negative", c.Flow.Walks.Count, c.Flow.Walks.Steps)
	case c.Flow.Walks.ColorScale <= 0:
		return fmt.Errorf("flow.walks.color_scale %v must be positive", c.Flow.Walks.ColorScale)
	case c.Tris.NoiseScale <= 0:
		return fmt.Errorf("tris.noise_scale %v must be positive", c.Tris.NoiseScale)
	}
	if _, err := tess.ParseSamplePoint(c.Tris.SampleAt); err != nil {
		return err
	}
	return c.Grid().Validate()
}

// Grid returns the triangle grid for the canvas.
func (c *Config) Grid() tess.Grid {
	return tess.Grid{
		Width:   float64(c.Canvas.Width),
		Height:  float64(c.Canvas.Height),
		Side:    c.Tris.Side,
		Margin:  c.Tris.Margin,
		Stagger: c.Tris.Stagger,
	}
}

// Background parses the canvas background, nil when it is empty.
func (c *Config) Background() (color.Color, error) {
	return optionalColor(c.Canvas.Background)
}

func optionalColor(hex string) (color.Color, error) {
	if hex == "" {
		return nil, nil
	}
	col, err := palette.ParseHexColor(hex)
	if err != nil {
		return nil, err
	}
	return col, nil
}
