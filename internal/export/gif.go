package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

// alphaLevels is the number of opacities per body in the GIF palette.
const alphaLevels = 64

// Recorder captures every executed frame of an ImageSurface as a GIF frame.
type Recorder struct {
	surface    *viz.ImageSurface
	background color.NRGBA
	palette    color.Palette
	delay      int
	maxFrames  int

	frames []*image.Paletted
	delays []int
	canvas *image.RGBA
}

// NewRecorder records surface at fps onto background. maxFrames <= 0 keeps
// every frame.
func NewRecorder(surface *viz.ImageSurface, colors [physics.NumBodies]color.NRGBA, background color.NRGBA, fps float64, maxFrames int) *Recorder {
	delay := 2
	if fps > 0 {
		// GIF delays are whole centiseconds.
		delay = max(1, int(math.Round(100/fps)))
	}
	return &Recorder{
		surface:    surface,
		background: background,
		palette:    BuildPalette(colors, background),
		delay:      delay,
		maxFrames:  maxFrames,
	}
}

// BuildPalette blends each body color over the background at evenly spaced
// opacities, which covers every trail dot the renderer produces.
func BuildPalette(colors [physics.NumBodies]color.NRGBA, background color.NRGBA) color.Palette {
	bg := background
	bg.A = 0xff
	p := color.Palette{bg}
	for _, c := range colors {
		for k := 1; k <= alphaLevels; k++ {
			p = append(p, blend(c, bg, float64(k)/alphaLevels))
		}
	}
	return p
}

func blend(fg, bg color.NRGBA, a float64) color.NRGBA {
	mix := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*a + float64(b)*(1-a)))
	}
	return color.NRGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 0xff}
}

func (r *Recorder) OnFrame(sim.Frame) {
	if r.maxFrames > 0 && len(r.frames) >= r.maxFrames {
		return
	}
	r.frames = append(r.frames, r.capture())
	r.delays = append(r.delays, r.delay)
}

func (r *Recorder) capture() *image.Paletted {
	src := r.surface.Image()
	bounds := src.Bounds()
	if r.canvas == nil || r.canvas.Bounds() != bounds {
		r.canvas = image.NewRGBA(bounds)
	}
	FlattenInto(r.canvas, src, r.background)

	frame := image.NewPaletted(bounds, r.palette)
	draw.Draw(frame, bounds, r.canvas, bounds.Min, draw.Src)
	return frame
}

func (r *Recorder) Frames() int { return len(r.frames) }

// Full reports whether the frame limit has been reached.
func (r *Recorder) Full() bool {
	return r.maxFrames > 0 && len(r.frames) >= r.maxFrames
}

// Encode writes the looping animation.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	return gif.EncodeAll(w, &gif.GIF{
		Image:     r.frames,
		Delay:     r.delays,
		LoopCount: 0,
	})
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
