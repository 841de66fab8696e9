package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/san-kum/threebody/internal/analysis"
)

type svgRect struct {
	x, y, w, h int
	fill       color.NRGBA
}

// SVGSurface records fills as rectangles so a frame can be drawn by the
// renderer straight into a vector document.
type SVGSurface struct {
	width, height int
	fill          color.NRGBA
	rects         []svgRect
}

func NewSVGSurface(w, h int) *SVGSurface {
	return &SVGSurface{width: max(0, w), height: max(0, h)}
}

func (s *SVGSurface) Size() (int, int) { return s.width, s.height }

// ClearRect drops recorded rectangles. Only full clears are supported, which
// is all the renderer issues.
func (s *SVGSurface) ClearRect(x, y, w, h int) {
	s.rects = s.rects[:0]
}

func (s *SVGSurface) SetFillColor(c color.NRGBA) { s.fill = c }

func (s *SVGSurface) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.rects = append(s.rects, svgRect{x, y, w, h, s.fill})
}

// SetImageSmoothing is a no-op. The document sets crispEdges instead.
func (s *SVGSurface) SetImageSmoothing(bool) {}

func (s *SVGSurface) Rects() int { return len(s.rects) }

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Encode writes the recorded frame as an SVG document. A background with
// zero alpha is omitted.
func (s *SVGSurface) Encode(w io.Writer, background color.NRGBA) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
`, s.width, s.height, s.width, s.height)
	if background.A != 0 {
		fmt.Fprintf(&sb, "<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", hex(background))
	}

	for _, r := range s.rects {
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"`, r.x, r.y, r.w, r.h, hex(r.fill))
		if r.fill.A != 0xff {
			fmt.Fprintf(&sb, ` fill-opacity="%.3f"`, float64(r.fill.A)/255)
		}
		sb.WriteString("/>\n")
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (s *SVGSurface) Save(path string, background color.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f, background); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PortraitToSVG draws a traced orbit as a single path scaled to fit.
func PortraitToSVG(portrait *analysis.Portrait, width, height int, strokeColor string) string {
	if portrait == nil || len(portrait.Points) < 2 {
		return ""
	}
	points := portrait.Points

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := (p.Y - minY) / rangeY * float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
