package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultRefreshHz  = 120
	DefaultBackground = "#000000"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Physics dynamo.Params `yaml:"physics"`
	Render  RenderConfig  `yaml:"render"`
	Trail   TrailConfig   `yaml:"trail"`
	Loop    LoopConfig    `yaml:"loop"`
}

type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	ScaleFactor float64 `yaml:"scale_factor"`
	Grid        int     `yaml:"grid"`
	Palette     string  `yaml:"palette"`
	Background  string  `yaml:"background"`
}

type TrailConfig struct {
	Capacity int `yaml:"capacity"`
}

type LoopConfig struct {
	FPS           float64 `yaml:"fps"`
	RefreshHz     float64 `yaml:"refresh_hz"`
	ValidateState bool    `yaml:"validate_state"`
}

func DefaultConfig() *Config {
	return &Config{
		Physics: dynamo.DefaultParams(),
		Render: RenderConfig{
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			ScaleFactor: viz.DefaultScaleFactor,
			Grid:        viz.DefaultGrid,
			Palette:     viz.PaletteMono.Name,
			Background:  DefaultBackground,
		},
		Trail: TrailConfig{
			Capacity: physics.DefaultTrailCapacity,
		},
		Loop: LoopConfig{
			FPS:           sim.DefaultFPS,
			RefreshHz:     DefaultRefreshHz,
			ValidateState: true,
		},
	}
}

// Load overlays the YAML document at path on the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the YAML document at path on cfg, so a file can refine a
// preset. Unknown keys are rejected. An empty or comment-only document leaves
// cfg unchanged.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) Validate() error {
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("physics: %w", err)
	}
	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("render: size %dx%d: %w", r.Width, r.Height, dynamo.ErrInvalidSurface)
	}
	if !(r.ScaleFactor > 0) || math.IsInf(r.ScaleFactor, 0) {
		return fmt.Errorf("render: scale_factor %v: %w", r.ScaleFactor, ErrInvalidConfig)
	}
	if r.Grid < 1 {
		return fmt.Errorf("render: grid %d: %w", r.Grid, ErrInvalidConfig)
	}
	if _, ok := viz.LookupPalette(r.Palette); !ok {
		return fmt.Errorf("render: unknown palette %q (available: %s): %w",
			r.Palette, strings.Join(viz.PaletteNames(), ", "), ErrInvalidConfig)
	}
	if _, err := colorful.Hex(r.Background); err != nil {
		return fmt.Errorf("render: background %q: %w", r.Background, ErrInvalidConfig)
	}
	if c.Trail.Capacity < 1 {
		return fmt.Errorf("trail: capacity %d: %w", c.Trail.Capacity, ErrInvalidConfig)
	}
	if !(c.Loop.FPS > 0) || math.IsInf(c.Loop.FPS, 0) {
		return fmt.Errorf("loop: fps %v: %w", c.Loop.FPS, ErrInvalidConfig)
	}
	if !(c.Loop.RefreshHz > 0) || math.IsInf(c.Loop.RefreshHz, 0) {
		return fmt.Errorf("loop: refresh_hz %v: %w", c.Loop.RefreshHz, ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Params() dynamo.Params { return c.Physics }

func (c *Config) Palette() viz.Palette { return viz.GetPalette(c.Render.Palette) }

func (c *Config) Colors() ([physics.NumBodies]color.NRGBA, error) {
	return c.Palette().Colors()
}

// BackgroundColor parses the background, falling back to black.
func (c *Config) BackgroundColor() color.NRGBA {
	bg, err := colorful.Hex(c.Render.Background)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	r, g, b := bg.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func (c *Config) Options() sim.Options {
	return sim.Options{FPS: c.Loop.FPS, ValidateState: c.Loop.ValidateState}
}

// Renderer builds a renderer for a width x height surface using the
// configured scale factor and grid.
func (c *Config) Renderer(width, height int) *viz.Renderer {
	r := viz.NewRenderer(width, height)
	r.ScaleFactor = c.Render.ScaleFactor
	r.Grid = c.Render.Grid
	r.Resize(width, height)
	return r
}

// NewLoop seeds a system in the configured palette and binds it to surface.
func (c *Config) NewLoop(surface viz.Surface) (*sim.Loop, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	colors, err := c.Colors()
	if err != nil {
		return nil, err
	}
	w, h := surface.Size()
	sys := physics.NewSystem(colors, c.Trail.Capacity)
	return sim.New(sys, c.Params(), surface, c.Renderer(w, h), c.Options()), nil
}
