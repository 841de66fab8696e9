// Package window hosts the animation as an Ebitengine game. Ebitengine owns
// the frame clock and calls back into the loop once per tick.
package window

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

type Game struct {
	loop       *sim.Loop
	surface    *viz.ImageSurface
	background color.NRGBA
	// PixelScale renders the surface at 1/PixelScale of the window size.
	PixelScale int

	img   *ebiten.Image
	start time.Time
	w, h  int
}

func NewGame(loop *sim.Loop, surface *viz.ImageSurface, background color.NRGBA) *Game {
	bg := background
	bg.A = 0xff
	return &Game{
		loop:       loop,
		surface:    surface,
		background: bg,
		PixelScale: 1,
		start:      time.Now(),
	}
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.loop.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.loop.Reset()
	}

	if ebiten.IsWindowMinimized() {
		g.loop.Pause()
	} else if g.loop.Hidden() {
		g.loop.Resume()
	}

	ts := float64(time.Since(g.start).Microseconds()) / 1000
	if g.loop.Tick(ts) && g.img != nil {
		g.img.WritePixels(g.surface.Image().Pix)
	}

	if g.loop.Status() == sim.Stopped {
		if err := g.loop.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

// Layout resizes the loop whenever the window size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := layoutSize(outsideWidth, outsideHeight, g.PixelScale)
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		g.loop.Resize(w, h)
		if g.img != nil {
			g.img.Deallocate()
			g.img = nil
		}
		if w > 0 && h > 0 {
			g.img = ebiten.NewImage(w, h)
		}
	}
	return max(1, w), max(1, h)
}

func layoutSize(outsideWidth, outsideHeight, scale int) (int, int) {
	scale = max(1, scale)
	return outsideWidth / scale, outsideHeight / scale
}

// Run opens a resizable window and blocks until it is closed.
func Run(g *Game, title string, refreshHz float64) error {
	w, h := g.surface.Size()
	ebiten.SetWindowSize(w*max(1, g.PixelScale), h*max(1, g.PixelScale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(max(1, refreshHz)))

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
