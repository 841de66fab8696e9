package config

import "sort"

var Presets = map[string]*Config{
	"figure8": DefaultConfig(),
	"long-trail": preset(func(c *Config) {
		c.Trail.Capacity = 240
	}),
	"phosphor": preset(func(c *Config) {
		c.Render.Palette = "phosphor"
		c.Render.Background = "#001100"
		c.Trail.Capacity = 120
	}),
	"thumbnail": preset(func(c *Config) {
		c.Render.Width, c.Render.Height = 160, 120
		c.Render.Grid = 2
		c.Trail.Capacity = 40
		c.Loop.FPS = 30
	}),
	"cinema": preset(func(c *Config) {
		c.Render.Width, c.Render.Height = 1920, 1080
		c.Render.Palette = "ember"
		c.Render.Background = "#0a0a0a"
		c.Trail.Capacity = 160
	}),
}

func preset(apply func(*Config)) *Config {
	c := DefaultConfig()
	apply(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
