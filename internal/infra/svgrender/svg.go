// Package svgrender draws a four-bar linkage as a standalone SVG document.
// It maps mechanism coordinates into a fixed viewport sized to the full
// reach of the input and output circles, so exports of the same link set
// at different crank angles share one frame of reference.
package svgrender

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mechkit/fourbar/internal/domain"
)

// Role and annotation colors.
const (
	colorFrame   = "#6b7280"
	colorInput   = "#e63946"
	colorCoupler = "#2a9d8f"
	colorOutput  = "#457b9d"
	colorTrace   = "#f4a261"
	colorJoint   = "#111827"
	colorText    = "#374151"
)

const margin = 40.0

// Options control the output document.
type Options struct {
	Width  int // default 640
	Height int // default 480
	Trace  []domain.Point
}

// bounds accumulates the world-coordinate extent of everything drawn.
type bounds struct {
	minX, maxX, minY, maxY float64
	isSet                  bool
}

func (b *bounds) updatePoint(x, y float64) {
	if !b.isSet {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.isSet = true
		return
	}
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
}

func (b *bounds) updateCircle(c domain.Point, r float64) {
	b.updatePoint(c.X-r, c.Y-r)
	b.updatePoint(c.X+r, c.Y+r)
}

// viewport maps world coordinates to SVG pixels with a uniform scale and a
// flipped Y axis.
type viewport struct {
	b      bounds
	scale  float64
	height float64
}

func newViewport(b bounds, w, h float64) viewport {
	sx := (w - 2*margin) / (b.maxX - b.minX)
	sy := (h - 2*margin) / (b.maxY - b.minY)
	return viewport{b: b, scale: math.Min(sx, sy), height: h}
}

func (v viewport) x(wx float64) float64 { return margin + (wx-v.b.minX)*v.scale }
func (v viewport) y(wy float64) float64 { return v.height - margin - (wy-v.b.minY)*v.scale }

// Render draws the linkage at the given crank angle. Invalid angles render
// the fixed joints and the crank with a dashed gap where the coupler and
// output cannot meet.
func Render(links domain.LinkSet, thetaDeg float64, opts Options) []byte {
	w := float64(opts.Width)
	if opts.Width <= 0 {
		w = 640
	}
	h := float64(opts.Height)
	if opts.Height <= 0 {
		h = 480
	}

	f := domain.Solve(links, thetaDeg)
	cls := domain.Classify(links)

	var b bounds
	b.updateCircle(f.A, links.Input)
	b.updateCircle(f.D, links.Output)
	for _, p := range opts.Trace {
		b.updatePoint(p.X, p.Y)
	}
	if f.Valid {
		b.updatePoint(f.C.X, f.C.Y)
	}
	v := newViewport(b, w, h)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n", w, h, w, h)
	fmt.Fprintf(&buf, "  <rect width=\"%.0f\" height=\"%.0f\" fill=\"#ffffff\"/>\n", w, h)

	if len(opts.Trace) > 0 {
		buf.WriteString("  <polyline points=\"")
		for i, p := range opts.Trace {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%.2f,%.2f", v.x(p.X), v.y(p.Y))
		}
		fmt.Fprintf(&buf, "\" fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\"/>\n", colorTrace)
	}

	writeLine(&buf, v, f.A, f.D, colorFrame, 3, false)
	writeLine(&buf, v, f.A, f.B, colorInput, 3, false)
	if f.Valid {
		writeLine(&buf, v, f.B, f.C, colorCoupler, 3, false)
		writeLine(&buf, v, f.C, f.D, colorOutput, 3, false)
	} else {
		writeLine(&buf, v, f.B, f.D, colorFrame, 1.5, true)
	}

	writeJoint(&buf, v, f.A, "A")
	writeJoint(&buf, v, f.B, "B")
	if f.Valid {
		writeJoint(&buf, v, f.C, "C")
	}
	writeJoint(&buf, v, f.D, "D")

	writeLegend(&buf)

	caption := fmt.Sprintf("%s — shortest: %s, longest: %s", cls.Category.Label(), cls.Shortest, cls.Longest)
	fmt.Fprintf(&buf, "  <text x=\"16.00\" y=\"%.2f\" font-family=\"monospace\" font-size=\"13\" fill=\"%s\">%s</text>\n", h-16, colorText, caption)
	if !f.Valid {
		fmt.Fprintf(&buf, "  <text x=\"16.00\" y=\"%.2f\" font-family=\"monospace\" font-size=\"13\" fill=\"%s\">no assembly at %.1f°</text>\n", h-34, colorInput, thetaDeg)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeLine(buf *bytes.Buffer, v viewport, p, q domain.Point, color string, width float64, dashed bool) {
	dash := ""
	if dashed {
		dash = " stroke-dasharray=\"6 4\""
	}
	fmt.Fprintf(buf, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"%.1f\" stroke-linecap=\"round\"%s/>\n",
		v.x(p.X), v.y(p.Y), v.x(q.X), v.y(q.Y), color, width, dash)
}

func writeJoint(buf *bytes.Buffer, v viewport, p domain.Point, label string) {
	fmt.Fprintf(buf, "  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"5.0\" fill=\"%s\"/>\n", v.x(p.X), v.y(p.Y), colorJoint)
	fmt.Fprintf(buf, "  <text x=\"%.2f\" y=\"%.2f\" font-family=\"monospace\" font-size=\"12\" fill=\"%s\">%s</text>\n",
		v.x(p.X)+8, v.y(p.Y)-8, colorText, label)
}

func writeLegend(buf *bytes.Buffer) {
	entries := []struct {
		color string
		label string
	}{
		{colorFrame, "frame"},
		{colorInput, "input"},
		{colorCoupler, "coupler"},
		{colorOutput, "output"},
	}
	for i, e := range entries {
		y := 24.0 + float64(i)*18
		fmt.Fprintf(buf, "  <line x1=\"16.00\" y1=\"%.2f\" x2=\"44.00\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"3.0\" stroke-linecap=\"round\"/>\n", y, y, e.color)
		fmt.Fprintf(buf, "  <text x=\"52.00\" y=\"%.2f\" font-family=\"monospace\" font-size=\"12\" fill=\"%s\">%s</text>\n", y+4, colorText, e.label)
	}
}
