package tui

import (
	"math"
	"strings"

	"github.com/mechkit/fourbar/internal/domain"
)

// paint identifies which style a canvas cell takes.
type paint byte

const (
	paintNone paint = iota
	paintFrame
	paintInput
	paintCoupler
	paintOutput
	paintJoint
)

// canvas is a fixed-size cell grid the mechanism is rasterized onto.
// Terminal cells are roughly twice as tall as wide, so world Y is
// compressed by half during mapping to keep circles round on screen.
type canvas struct {
	w, h  int
	cells []rune
	paint []paint
}

func newCanvas(w, h int) *canvas {
	c := &canvas{
		w:     w,
		h:     h,
		cells: make([]rune, w*h),
		paint: make([]paint, w*h),
	}
	for i := range c.cells {
		c.cells[i] = ' '
	}
	return c
}

func (c *canvas) set(x, y int, r rune, p paint) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := y*c.w + x
	c.cells[i] = r
	c.paint[i] = p
}

// line rasterizes a segment with Bresenham, picking a glyph from the
// segment's dominant direction.
func (c *canvas) line(x0, y0, x1, y1 int, p paint) {
	r := glyphFor(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.set(x0, y0, r, p)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func glyphFor(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx >= 2*ady:
		return '─'
	case ady >= 2*adx:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲' // screen Y grows downward
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// render returns the grid as styled terminal rows, grouping runs of
// equally painted cells so styling cost stays linear.
func (c *canvas) render(th Theme) string {
	styleFor := func(p paint) func(...string) string {
		switch p {
		case paintFrame:
			return th.Roles[domain.RoleFrame].Render
		case paintInput:
			return th.Roles[domain.RoleInput].Render
		case paintCoupler:
			return th.Roles[domain.RoleCoupler].Render
		case paintOutput:
			return th.Roles[domain.RoleOutput].Render
		case paintJoint:
			return th.Title.Render
		}
		return nil
	}

	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := y * c.w
		x := 0
		for x < c.w {
			p := c.paint[row+x]
			start := x
			for x < c.w && c.paint[row+x] == p {
				x++
			}
			run := string(c.cells[row+start : row+x])
			if fn := styleFor(p); fn != nil {
				run = fn(run)
			}
			sb.WriteString(run)
		}
	}
	return sb.String()
}

// drawMechanism rasterizes the joint frame onto a fresh canvas. The
// viewport covers the full reach of the input and output circles so the
// drawing does not jump as the crank turns.
func drawMechanism(links domain.LinkSet, f domain.JointFrame, w, h int, th Theme) string {
	c := newCanvas(w, h)

	minX := math.Min(f.A.X-links.Input, f.D.X-links.Output)
	maxX := math.Max(f.A.X+links.Input, f.D.X+links.Output)
	minY := math.Min(f.A.Y-links.Input, f.D.Y-links.Output)
	maxY := math.Max(f.A.Y+links.Input, f.D.Y+links.Output)

	sx := float64(w-1) / (maxX - minX)
	// Halve vertical resolution to compensate for cell aspect ratio.
	sy := float64(h-1) / (maxY - minY)
	s := math.Min(sx, 2*sy)

	toCell := func(p domain.Point) (int, int) {
		cx := int(math.Round((p.X - minX) * s))
		cy := int(math.Round((maxY - p.Y) * s / 2))
		return cx, cy
	}

	ax, ay := toCell(f.A)
	bx, by := toCell(f.B)
	dx, dy := toCell(f.D)

	c.line(ax, ay, dx, dy, paintFrame)
	c.line(ax, ay, bx, by, paintInput)
	if f.Valid {
		cx, cy := toCell(f.C)
		c.line(bx, by, cx, cy, paintCoupler)
		c.line(cx, cy, dx, dy, paintOutput)
		c.set(cx, cy, 'C', paintJoint)
	}

	c.set(ax, ay, 'A', paintJoint)
	c.set(bx, by, 'B', paintJoint)
	c.set(dx, dy, 'D', paintJoint)

	return c.render(th)
}
