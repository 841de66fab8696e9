// Package term hosts the animation full screen in a terminal. Every cell
// shows two stacked pixels with the upper half block glyph.
package term

import (
	"context"
	"image"
	"image/color"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/threebody/internal/export"
	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

const (
	// DotScale is the number of surface pixels per terminal pixel on each
	// axis. Two keeps the 3x3 trail dots visible after nearest sampling.
	DotScale = 2

	upperHalf = '▀'
)

// SurfaceSize is the raster size backing a cols x rows terminal.
func SurfaceSize(cols, rows int) (int, int) {
	return cols * DotScale, rows * 2 * DotScale
}

// Host feeds a loop with ticker opportunities and draws each executed frame
// to the screen. Input is handled between frames on the loop goroutine.
type Host struct {
	screen     tcell.Screen
	loop       *sim.Loop
	surface    *viz.ImageSurface
	background color.NRGBA
	refreshHz  float64

	events chan tcell.Event
	done   chan struct{}
	ticks  *sim.TickerSource

	pixels *image.RGBA
	flat   *image.RGBA
}

// New binds an initialized screen to loop. surface must be the loop's surface.
func New(screen tcell.Screen, loop *sim.Loop, surface *viz.ImageSurface, background color.NRGBA, refreshHz float64) *Host {
	if refreshHz <= 0 {
		refreshHz = sim.DefaultFPS
	}
	return &Host{
		screen:     screen,
		loop:       loop,
		surface:    surface,
		background: background,
		refreshHz:  refreshHz,
		events:     make(chan tcell.Event, 16),
		done:       make(chan struct{}),
	}
}

// Run blocks until the user quits, ctx ends or the loop stops itself. A Host
// runs once.
func (h *Host) Run(ctx context.Context) error {
	h.screen.HideCursor()
	h.resize(h.screen.Size())

	defer close(h.done)
	go h.poll()

	h.ticks = sim.NewTickerSource(h.refreshHz)
	defer h.ticks.Close()

	h.loop.AddObserver(h)
	return h.loop.Run(ctx, h)
}

// poll forwards screen events until the screen is finalized or Run has
// returned.
func (h *Host) poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(h.events)
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

// NextFrame implements sim.FrameSource. Pending input is applied before the
// next opportunity is returned.
func (h *Host) NextFrame(ctx context.Context) (float64, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case ev, ok := <-h.events:
			if !ok {
				return 0, io.EOF
			}
			if quit := h.handle(ev); quit {
				return 0, io.EOF
			}
		case t := <-h.ticks.C():
			return h.ticks.Stamp(t), nil
		}
	}
}

func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			h.loop.Reset()
		}
	case *tcell.EventResize:
		h.resize(ev.Size())
		h.screen.Sync()
	}
	return false
}

func (h *Host) resize(cols, rows int) {
	w, ht := SurfaceSize(cols, rows)
	h.loop.Resize(w, ht)
	h.pixels = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	h.flat = image.NewRGBA(h.pixels.Bounds())
}

// OnFrame implements sim.Observer.
func (h *Host) OnFrame(sim.Frame) {
	h.blit()
	h.screen.Show()
}

func (h *Host) blit() {
	viz.Resample(h.pixels, h.surface.Image(), h.surface.ImageSmoothing())
	export.FlattenInto(h.flat, h.pixels, h.background)

	b := h.flat.Bounds()
	for y := 0; y+1 < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := h.flat.RGBAAt(x, y)
			bottom := h.flat.RGBAAt(x, y+1)
			style := tcell.StyleDefault.
				Foreground(rgb(top)).
				Background(rgb(bottom))
			h.screen.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
