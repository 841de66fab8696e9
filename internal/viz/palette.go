package viz

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/threebody/internal/physics"
)

// Palette defines the body colors and the terminal accents drawn around them.
type Palette struct {
	Name   string
	Bodies [physics.NumBodies]string
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// Available palettes
var (
	PaletteMono = Palette{
		Name:   "mono",
		Bodies: [physics.NumBodies]string{"#555555", "#888888", "#aaaaaa"},
		Accent: lipgloss.Color("#aaaaaa"),
		Muted:  lipgloss.Color("#555555"),
	}

	PalettePhosphor = Palette{
		Name:   "phosphor",
		Bodies: [physics.NumBodies]string{"#005500", "#00aa00", "#33ff33"}, // Green phosphor
		Accent: lipgloss.Color("#33ff33"),
		Muted:  lipgloss.Color("#005500"),
	}

	PaletteEmber = Palette{
		Name:   "ember",
		Bodies: [physics.NumBodies]string{"#ff6b6b", "#feca57", "#ff9ff3"},
		Accent: lipgloss.Color("#feca57"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	PaletteIce = Palette{
		Name:   "ice",
		Bodies: [physics.NumBodies]string{"#0077be", "#00a8cc", "#e0f0ff"},
		Accent: lipgloss.Color("#00a8cc"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	// Palettes lists every built-in palette, default first.
	Palettes = []Palette{
		PaletteMono,
		PalettePhosphor,
		PaletteEmber,
		PaletteIce,
	}
)

// LookupPalette returns the palette with the given name.
func LookupPalette(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// GetPalette returns a palette by name, falling back to mono.
func GetPalette(name string) Palette {
	if p, ok := LookupPalette(name); ok {
		return p
	}
	return PaletteMono
}

func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// Colors parses the body hex colors into opaque NRGBA values.
func (p Palette) Colors() ([physics.NumBodies]color.NRGBA, error) {
	var out [physics.NumBodies]color.NRGBA
	for i, hex := range p.Bodies {
		c, err := colorful.Hex(hex)
		if err != nil {
			return out, fmt.Errorf("palette %s body %d: %w", p.Name, i, err)
		}
		r, g, b := c.RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out, nil
}
