package gui

import (
	"image"
	"image/color"
	"testing"
)

func TestCopyPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	src.SetRGBA(1, 0, color.RGBA{4, 5, 6, 255})

	dst := make([]color.RGBA, 2)
	copyPixels(dst, src)

	if dst[0] != (color.RGBA{1, 2, 3, 255}) || dst[1] != (color.RGBA{4, 5, 6, 255}) {
		t.Errorf("unexpected pixels %v", dst)
	}
}
