package viz

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Resample scales src into dst. With smoothing off the nearest source pixel
// is taken, which keeps the grid blocks hard-edged.
func Resample(dst draw.Image, src image.Image, smoothing bool) {
	var scaler draw.Scaler = draw.NearestNeighbor
	if smoothing {
		scaler = draw.ApproxBiLinear
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// Brightness returns the CIE lightness of the pixel at (x, y) weighted by its
// alpha, in [0,1]. Fully transparent pixels are 0.
func Brightness(img image.Image, x, y int) float64 {
	c := img.At(x, y)
	_, _, _, a := c.RGBA()
	if a == 0 {
		return 0
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	l, _, _ := cf.Clamped().Lab()
	return l * float64(a) / 0xffff
}
