package analysis

import "strings"

// Point is a position in simulation units.
type Point struct{ X, Y float64 }

// Portrait is the path one body traces.
type Portrait struct {
	Body   int
	Points []Point
}

// NewPortrait extracts body's path from a trajectory. It returns nil for an
// unknown body.
func NewPortrait(tr *Trajectory, body int) *Portrait {
	if tr == nil || body < 0 || body >= len(tr.X) {
		return nil
	}
	p := &Portrait{Body: body, Points: make([]Point, tr.Len())}
	for i := range p.Points {
		p.Points[i] = Point{X: tr.X[body][i], Y: tr.Y[body][i]}
	}
	return p
}

// PortraitToASCII plots the path onto a width by height character grid with
// axes through the origin. Screen y grows downward, as on the surface.
func PortraitToASCII(portrait *Portrait, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y
	for _, p := range portrait.Points {
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

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	col := func(x float64) int { return int((x - minX) / rangeX * float64(width-1)) }
	row := func(y float64) int { return int((y - minY) / rangeY * float64(height-1)) }

	if c := col(0); minX <= 0 && c >= 0 && c < width {
		for r := range canvas {
			canvas[r][c] = '│'
		}
	}
	if r := row(0); minY <= 0 && r >= 0 && r < height {
		for c := range canvas[r] {
			if canvas[r][c] == '│' {
				canvas[r][c] = '┼'
			} else {
				canvas[r][c] = '─'
			}
		}
	}

	for _, p := range portrait.Points {
		c, r := col(p.X), row(p.Y)
		if r >= 0 && r < height && c >= 0 && c < width {
			canvas[r][c] = '•'
		}
	}

	var sb strings.Builder
	for i, line := range canvas {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}
