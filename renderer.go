package sigpad

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/sigpad/surface"
)

// Stats counts what a Renderer has drawn since it was created or its
// counters were reset.
type Stats struct {
	Curves int // curves that produced at least one stamp
	Stamps int // circles stamped along curves
	Dots   int // single dots
}

// Renderer draws curve segments as filled variable-width ribbons.
//
// A curve is sampled at a number of points proportional to its length and
// a filled circle is stamped at every sample. All stamps of one curve are
// accumulated into a single path and filled once, so overlapping circles
// merge into a smooth ribbon.
//
// The renderer also tracks whether anything has been drawn on the surface.
type Renderer struct {
	surface surface.Surface
	pen     color.Color
	empty   bool
	stats   Stats
}

// NewRenderer creates a renderer drawing on s with the given pen color.
func NewRenderer(s surface.Surface, pen color.Color) *Renderer {
	return &Renderer{surface: s, pen: pen, empty: true}
}

// SetPenColor changes the fill color for subsequent drawing.
func (r *Renderer) SetPenColor(c color.Color) {
	r.pen = c
}

// IsEmpty reports whether nothing has been drawn since creation or the
// last MarkEmpty.
func (r *Renderer) IsEmpty() bool {
	return r.empty
}

// MarkEmpty records that the surface has been cleared.
func (r *Renderer) MarkEmpty() {
	r.empty = true
}

// markDrawn records that the surface has content not drawn by the
// renderer, such as an imported image.
func (r *Renderer) markDrawn() {
	r.empty = false
}

// Stats returns the drawing counters.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// DrawDot draws a filled circle of the given radius centered at p.
func (r *Renderer) DrawDot(p Point, radius float64) error {
	s := r.surface
	s.BeginPath()
	s.MoveTo(p.X, p.Y)
	s.Arc(p.X, p.Y, radius, 0, 2*math.Pi)
	s.ClosePath()
	r.empty = false
	r.stats.Dots++
	return r.fill()
}

// DrawCurve draws c as a ribbon whose width changes from startWidth to
// endWidth.
//
// The curve is sampled at floor(c.Length()) evenly spaced parameters in
// [0, 1). The width at parameter t is startWidth + t³·(endWidth-startWidth),
// which keeps most of the segment close to the previous width and moves to
// the new width near the end. Curves shorter than one unit, or too long to
// stamp, draw nothing.
func (r *Renderer) DrawCurve(c Curve, startWidth, endWidth float64) error {
	steps := math.Floor(c.Length())
	if !(steps >= 1 && steps <= math.MaxInt32) {
		return nil
	}
	n := int(steps)
	delta := endWidth - startWidth

	s := r.surface
	s.BeginPath()
	for i := range n {
		t := float64(i) / float64(n)
		x, y := c.Eval(t)
		width := startWidth + t*t*t*delta
		r.stamp(x, y, width)
	}
	s.ClosePath()

	r.stats.Curves++
	r.stats.Stamps += n
	return r.fill()
}

// stamp appends one circle of the given line width to the pending path.
func (r *Renderer) stamp(x, y, width float64) {
	r.surface.MoveTo(x, y)
	r.surface.Arc(x, y, width/2, 0, 2*math.Pi)
	r.empty = false
}

func (r *Renderer) fill() error {
	if err := r.surface.Fill(r.pen); err != nil {
		return fmt.Errorf("sigpad: fill: %w", err)
	}
	return nil
}
