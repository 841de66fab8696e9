package viz

import (
	"image"
	"image/color"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", c.Grid[0][1])
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != brailleBlank {
		t.Errorf("cell 0 after unset = %U", c.Grid[0][0])
	}

	c.Set(-1, 0)
	c.Set(100, 0)
	c.Clear()
	if c.String() != string([]rune{brailleBlank, brailleBlank}) {
		t.Errorf("String() = %q", c.String())
	}
}

func TestCanvasPlot(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(1, 2, color.RGBA{0xff, 0xff, 0xff, 0xff})
	img.SetRGBA(2, 0, color.RGBA{0x08, 0x08, 0x08, 0xff})

	c := NewCanvas(2, 1)
	c.Plot(img, 0.2)

	// (1,2) is dot 6 of the first cell
	if c.Grid[0][0] != 0x2820 {
		t.Errorf("cell 0 = %U, want U+2820", c.Grid[0][0])
	}
	if c.Grid[0][1] != brailleBlank {
		t.Errorf("dim pixel should stay below threshold, got %U", c.Grid[0][1])
	}
}

func TestCanvasReplotClearsStaleDots(t *testing.T) {
	lit := image.NewRGBA(image.Rect(0, 0, 4, 4))
	lit.SetRGBA(0, 0, color.RGBA{0xff, 0xff, 0xff, 0xff})
	lit.SetRGBA(3, 3, color.RGBA{0xff, 0xff, 0xff, 0xff})

	c := NewCanvas(2, 1)
	c.Plot(lit, 0.2)
	if c.Grid[0][0] != 0x2801 || c.Grid[0][1] != 0x2880 {
		t.Fatalf("first plot = %q", c.String())
	}

	moved := image.NewRGBA(image.Rect(0, 0, 4, 4))
	moved.SetRGBA(1, 2, color.RGBA{0xff, 0xff, 0xff, 0xff})
	c.Plot(moved, 0.2)
	if c.Grid[0][0] != 0x2820 {
		t.Errorf("cell 0 after replot = %U, want U+2820", c.Grid[0][0])
	}
	if c.Grid[0][1] != brailleBlank {
		t.Errorf("cell 1 kept a stale dot: %U", c.Grid[0][1])
	}
}

func TestResampleNearestKeepsTrailDots(t *testing.T) {
	src := NewImageSurface(16, 16)
	src.SetFillColor(color.NRGBA{0xff, 0xff, 0xff, 0xff})
	src.FillRect(7, 7, 3, 3) // trail dot around (8,8)

	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	Resample(dst, src.Image(), false)

	lit := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if dst.RGBAAt(x, y).A == 0xff {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("3x3 dot vanished after 2:1 nearest-neighbor downsample")
	}
}

func TestBrightness(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{0xff, 0xff, 0xff, 0xff})

	if b := Brightness(img, 0, 0); b < 0.99 {
		t.Errorf("white brightness = %v", b)
	}
	if b := Brightness(img, 1, 0); b != 0 {
		t.Errorf("transparent brightness = %v", b)
	}
}
