package viz

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Surface is the drawing target consumed by Renderer.
type Surface interface {
	Size() (w, h int)
	ClearRect(x, y, w, h int)
	SetFillColor(c color.NRGBA)
	FillRect(x, y, w, h int)
	SetImageSmoothing(enabled bool)
}

// Resizer is implemented by surfaces whose pixel size can be reassigned.
type Resizer interface {
	Resize(w, h int)
}

// ImageSurface is a Surface backed by an RGBA image. Fills composite
// source-over; clears write transparent pixels.
type ImageSurface struct {
	img       *image.RGBA
	fill      image.Uniform
	smoothing bool
}

func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{smoothing: true}
	s.Resize(w, h)
	return s
}

// Resize reallocates the backing image. Like reassigning a canvas size, the
// content is discarded.
func (s *ImageSurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) ClearRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *ImageSurface) SetFillColor(c color.NRGBA) {
	s.fill = image.Uniform{C: c}
}

func (s *ImageSurface) FillRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, &s.fill, image.Point{}, draw.Over)
}

func (s *ImageSurface) SetImageSmoothing(enabled bool) { s.smoothing = enabled }
func (s *ImageSurface) ImageSmoothing() bool           { return s.smoothing }

// Image exposes the backing image. Callers must not retain it across Resize.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// WithAlpha returns c with its alpha replaced by opacity in [0,1].
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	opacity = math.Max(0, math.Min(1, opacity))
	c.A = uint8(math.Round(opacity * 255))
	return c
}
