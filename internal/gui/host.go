// Package gui hosts the animation in a resizable raylib window. The surface
// is uploaded to a point-filtered texture after every executed frame.
package gui

import (
	"fmt"
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/threebody/internal/export"
	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type Host struct {
	loop       *sim.Loop
	surface    *viz.ImageSurface
	background color.NRGBA
	title      string
	refreshHz  int32
	ShowHUD    bool

	texture rl.Texture2D
	flat    *image.RGBA
	pixels  []color.RGBA
}

func New(loop *sim.Loop, surface *viz.ImageSurface, background color.NRGBA, refreshHz float64) *Host {
	return &Host{
		loop:       loop,
		surface:    surface,
		background: background,
		title:      "threebody",
		refreshHz:  int32(max(1, refreshHz)),
	}
}

// initWindow opens a resizable window at the surface size with Escape as the
// exit key.
func (h *Host) initWindow() {
	w, ht := h.surface.Size()
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w), int32(ht), h.title)
	rl.SetTargetFPS(h.refreshHz)
	rl.SetExitKey(rl.KeyEscape)
}

// Run opens the window and blocks until it is closed or the loop stops.
func (h *Host) Run() error {
	h.initWindow()
	defer rl.CloseWindow()

	h.loadTexture()
	defer func() { rl.UnloadTexture(h.texture) }()

	for !rl.WindowShouldClose() && h.loop.Status() == sim.Running {
		h.Update()
		h.Draw()
	}
	return h.loop.Err()
}

// loadTexture (re)creates the texture at the current surface size.
func (h *Host) loadTexture() {
	w, ht := h.surface.Size()
	h.flat = image.NewRGBA(image.Rect(0, 0, w, ht))
	h.pixels = make([]color.RGBA, w*ht)
	if w == 0 || ht == 0 {
		h.texture = rl.Texture2D{}
		return
	}

	img := rl.GenImageColor(w, ht, rl.Blank)
	h.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(h.texture, rl.FilterPoint)
}

func (h *Host) Update() {
	if rl.IsWindowResized() {
		rl.UnloadTexture(h.texture)
		h.loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		h.loadTexture()
	}

	if rl.IsWindowMinimized() {
		h.loop.Pause()
	} else if h.loop.Hidden() {
		h.loop.Resume()
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		h.loop.Stop()
		return
	case rl.IsKeyPressed(rl.KeyR):
		h.loop.Reset()
	case rl.IsKeyPressed(rl.KeyH):
		h.ShowHUD = !h.ShowHUD
	}

	if h.loop.Tick(rl.GetTime() * 1000) {
		h.upload()
	}
}

func (h *Host) upload() {
	export.FlattenInto(h.flat, h.surface.Image(), h.background)
	copyPixels(h.pixels, h.flat)
	if len(h.pixels) > 0 {
		rl.UpdateTexture(h.texture, h.pixels)
	}
}

// copyPixels unpacks an RGBA image into raylib's pixel layout.
func copyPixels(dst []color.RGBA, src *image.RGBA) {
	for i := range dst {
		p := src.Pix[i*4 : i*4+4 : i*4+4]
		dst[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
}

func (h *Host) Draw() {
	rl.BeginDrawing()
	bg := h.background
	rl.ClearBackground(rl.NewColor(bg.R, bg.G, bg.B, 255))
	rl.DrawTexture(h.texture, 0, 0, rl.White)

	if h.ShowHUD {
		h.drawHUD()
	}
	rl.EndDrawing()
}

func (h *Host) drawHUD() {
	sys := h.loop.System()
	rl.DrawText(h.title, 20, 20, 20, ColText)
	w, ht := h.loop.Surface().Size()
	rl.DrawText(fmt.Sprintf("frame %d  t=%.2f  %d FPS", sys.Frames, sys.Time, rl.GetFPS()), 20, 46, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%dx%d  scale %.1f", w, ht, h.loop.Renderer().Scale()), 20, 64, 14, ColTextDim)
	rl.DrawText("[R] RESET  [H] HUD  [Q] QUIT", 20, int32(rl.GetScreenHeight())-30, 14, ColTextDim)
}
