package viz

import (
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/threebody/internal/physics"
)

func TestProjectOrigin(t *testing.T) {
	r := NewRenderer(800, 600)
	x, y := r.Project(physics.Vec2{})
	if x != 400 || y != 300 {
		t.Errorf("Project(0,0) = (%d, %d), want (400, 300)", x, y)
	}
}

func TestProjectSnapping(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"below half", 401.9, 400}, // 100.475
		{"tie", 402, 404},          // 100.5 rounds toward +Inf
		{"above half", 403, 404},
		{"exact multiple", 404, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, _ := Project(physics.Vec2{X: tt.x}, 0, 0, 1, 4)
			if x != tt.want {
				t.Errorf("x = %d, want %d", x, tt.want)
			}
		})
	}
}

func TestProjectNegativeTie(t *testing.T) {
	// (0 + -10*1)/4 = -2.5 rounds toward +Inf to -2, so the pixel is -8.
	x, _ := Project(physics.Vec2{X: -10}, 0, 0, 1, 4)
	if x != -8 {
		t.Errorf("x = %d, want -8", x)
	}
}

func TestProjectSeedBody(t *testing.T) {
	r := NewRenderer(800, 600)
	if r.Scale() != 330 {
		t.Fatalf("Scale() = %v, want 330", r.Scale())
	}
	x, y := r.Project(physics.Vec2{X: physics.SeedX1, Y: physics.SeedY1})
	if x != 720 || y != 220 {
		t.Errorf("seed body A projects to (%d, %d), want (720, 220)", x, y)
	}
}

func TestResizeIdempotent(t *testing.T) {
	r := NewRenderer(100, 100)
	r.Resize(1024, 768)
	first := r.Scale()
	r.Resize(1024, 768)
	if r.Scale() != first {
		t.Errorf("scale changed on repeated resize: %v -> %v", first, r.Scale())
	}
	if want := float64(768) * DefaultScaleFactor; first != want {
		t.Errorf("Scale() = %v, want %v", first, want)
	}
}

// recordingSurface captures the draw calls in order.
type recordingSurface struct {
	w, h      int
	fill      color.NRGBA
	smoothing bool
	clears    int
	rects     []fillCall
}

type fillCall struct {
	x, y, w, h int
	c          color.NRGBA
}

func (s *recordingSurface) Size() (int, int)           { return s.w, s.h }
func (s *recordingSurface) ClearRect(x, y, w, h int)   { s.clears++; s.rects = nil }
func (s *recordingSurface) SetFillColor(c color.NRGBA) { s.fill = c }
func (s *recordingSurface) SetImageSmoothing(on bool)  { s.smoothing = on }

func (s *recordingSurface) FillRect(x, y, w, h int) {
	s.rects = append(s.rects, fillCall{x, y, w, h, s.fill})
}

func TestDrawOrderAndOpacity(t *testing.T) {
	colors := [physics.NumBodies]color.NRGBA{
		{0x55, 0x55, 0x55, 0xff},
		{0x88, 0x88, 0x88, 0xff},
		{0xaa, 0xaa, 0xaa, 0xff},
	}
	sys := physics.NewSystem(colors, 4)
	for i := 0; i < 2; i++ {
		sys.Record()
	}

	surf := &recordingSurface{w: 800, h: 600, smoothing: true}
	r := NewRenderer(800, 600)
	r.Draw(surf, &sys.Bodies)

	if surf.smoothing {
		t.Error("Draw should disable image smoothing")
	}
	if surf.clears != 1 {
		t.Errorf("clears = %d, want 1", surf.clears)
	}

	// 3 bodies * 2 trail dots, then 3 bodies * 5 marker blocks
	if len(surf.rects) != 6+15 {
		t.Fatalf("fill calls = %d, want 21", len(surf.rects))
	}

	for i := 0; i < 6; i++ {
		fc := surf.rects[i]
		if fc.w != 3 || fc.h != 3 {
			t.Errorf("trail dot %d size %dx%d, want 3x3", i, fc.w, fc.h)
		}
		body := i / 2
		wantA := uint8(128)
		if i%2 == 1 {
			wantA = 255
		}
		if fc.c.R != colors[body].R || fc.c.A != wantA {
			t.Errorf("trail dot %d color %+v, want body %d alpha %d", i, fc.c, body, wantA)
		}
	}

	for i := 6; i < 21; i++ {
		fc := surf.rects[i]
		body := (i - 6) / 5
		if fc.w != 4 || fc.h != 4 {
			t.Errorf("marker block %d size %dx%d, want 4x4", i, fc.w, fc.h)
		}
		if fc.c != colors[body] {
			t.Errorf("marker block %d color %+v, want %+v", i, fc.c, colors[body])
		}
	}

	sx, sy := r.Project(sys.Bodies[0].Pos)
	if first := surf.rects[0]; first.x != sx-1 || first.y != sy-1 {
		t.Errorf("trail dot at (%d,%d), want (%d,%d)", first.x, first.y, sx-1, sy-1)
	}
	marker := surf.rects[6:11]
	want := [][2]int{{sx - 2, sy - 2}, {sx - 2, sy - 6}, {sx - 2, sy + 2}, {sx - 6, sy - 2}, {sx + 2, sy - 2}}
	for i, m := range marker {
		if m.x != want[i][0] || m.y != want[i][1] {
			t.Errorf("marker block %d at (%d,%d), want %v", i, m.x, m.y, want[i])
		}
	}
}

func TestDrawOnImageSurface(t *testing.T) {
	colors, err := PaletteMono.Colors()
	if err != nil {
		t.Fatal(err)
	}
	sys := physics.NewSystem(colors, physics.DefaultTrailCapacity)
	surf := NewImageSurface(800, 600)
	r := NewRenderer(800, 600)
	r.Draw(surf, &sys.Bodies)

	// body C sits at the origin; its marker center pixel is opaque #aaaaaa
	got := surf.Image().RGBAAt(400, 300)
	if got != (color.RGBA{0xaa, 0xaa, 0xaa, 0xff}) {
		t.Errorf("pixel at body C = %+v", got)
	}
	// plus glyph arm tip above the center
	if got := surf.Image().RGBAAt(400, 294); got.A != 0xff {
		t.Errorf("upper arm pixel alpha = %d, want 255", got.A)
	}
	// diagonal corner is not part of the glyph
	if got := surf.Image().RGBAAt(405, 305); got.A != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", got.A)
	}
}

func TestDrawSkipsNonFinitePoints(t *testing.T) {
	colors, err := PaletteMono.Colors()
	if err != nil {
		t.Fatal(err)
	}
	sys := physics.NewSystem(colors, 4)
	sys.Record()
	sys.Bodies[0].Pos = physics.Vec2{X: math.NaN()}
	sys.Record()
	sys.Bodies[1].Pos = physics.Vec2{X: math.Inf(1), Y: 0.1}

	rec := &recordingSurface{w: 800, h: 600}
	r := NewRenderer(800, 600)
	r.Draw(rec, &sys.Bodies)

	// trails: body 0 keeps 1 of 2 points, body 1 both, body 2 both;
	// markers: only body 2
	if len(rec.rects) != 5+5 {
		t.Errorf("fill calls = %d, want 10", len(rec.rects))
	}

	surf := NewImageSurface(800, 600)
	r.Draw(surf, &sys.Bodies)
	img := surf.Image()
	for y := 0; y < 600; y++ {
		lit := 0
		for x := 0; x < 800; x++ {
			if img.RGBAAt(x, y).A != 0 {
				lit++
			}
		}
		if lit == 800 {
			t.Fatalf("row %d fully painted", y)
		}
	}
}
