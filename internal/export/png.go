package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Flatten composites img over an opaque background.
func Flatten(img image.Image, background color.NRGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	FlattenInto(out, img, background)
	return out
}

// FlattenInto composites src over background into dst, which must cover
// src's bounds.
func FlattenInto(dst *image.RGBA, src image.Image, background color.NRGBA) {
	bounds := src.Bounds()
	bg := background
	bg.A = 0xff
	draw.Draw(dst, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Over)
}

// WritePNG encodes img flattened onto background.
func WritePNG(w io.Writer, img image.Image, background color.NRGBA) error {
	return png.Encode(w, Flatten(img, background))
}

func SavePNG(path string, img image.Image, background color.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img, background); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
