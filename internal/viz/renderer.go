package viz

import (
	"math"

	"github.com/san-kum/threebody/internal/physics"
)

const (
	DefaultScaleFactor = 0.55
	DefaultGrid        = 4

	trailDot   = 3
	markerCell = 4
)

// markerOffsets are the top-left corners of the five 4x4 blocks of the plus
// glyph, relative to the snapped body position.
var markerOffsets = [5][2]int{
	{-2, -2},
	{-2, -6},
	{-2, 2},
	{-6, -2},
	{2, -2},
}

// Renderer maps simulation space onto a surface of known size.
type Renderer struct {
	ScaleFactor float64
	Grid        int

	width, height int
	scale         float64
}

func NewRenderer(width, height int) *Renderer {
	r := &Renderer{ScaleFactor: DefaultScaleFactor, Grid: DefaultGrid}
	r.Resize(width, height)
	return r
}

// Resize records the surface size and recomputes the scale.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.scale = float64(min(width, height)) * r.ScaleFactor
}

func (r *Renderer) Size() (int, int) { return r.width, r.height }
func (r *Renderer) Scale() float64   { return r.scale }

// Project returns the grid-snapped pixel for a simulation point.
func (r *Renderer) Project(p physics.Vec2) (int, int) {
	return Project(p, r.width, r.height, r.scale, r.Grid)
}

// Project centers p in a width x height surface, scales it and snaps both
// axes to multiples of grid.
func Project(p physics.Vec2, width, height int, scale float64, grid int) (int, int) {
	g := float64(grid)
	sx := roundHalfUp((float64(width)/2+p.X*scale)/g) * g
	sy := roundHalfUp((float64(height)/2+p.Y*scale)/g) * g
	return int(sx), int(sy)
}

// roundHalfUp rounds ties toward +Inf, unlike math.Round which rounds them
// away from zero.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Draw clears the surface, paints every trail and then every marker, so
// markers always sit on top of trail dots. Non-finite points have no pixel
// and are skipped.
func (r *Renderer) Draw(s Surface, bodies *[physics.NumBodies]physics.Body) {
	s.SetImageSmoothing(false)
	s.ClearRect(0, 0, r.width, r.height)

	for i := range bodies {
		b := &bodies[i]
		if b.Trail == nil {
			continue
		}
		n := b.Trail.Len()
		for t := 0; t < n; t++ {
			p := b.Trail.At(t)
			if !p.IsFinite() {
				continue
			}
			s.SetFillColor(WithAlpha(b.Color, float64(t+1)/float64(n)))
			sx, sy := r.Project(p)
			s.FillRect(sx-1, sy-1, trailDot, trailDot)
		}
	}

	for i := range bodies {
		b := &bodies[i]
		if !b.Pos.IsFinite() {
			continue
		}
		c := b.Color
		c.A = 0xff
		s.SetFillColor(c)
		sx, sy := r.Project(b.Pos)
		for _, o := range markerOffsets {
			s.FillRect(sx+o[0], sy+o[1], markerCell, markerCell)
		}
	}
}
