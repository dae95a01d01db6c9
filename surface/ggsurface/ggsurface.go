// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface draws sigpad strokes with a gogpu/gg drawing context.
//
// Importing the package registers the "gg" backend with the surface
// registry:
//
//	import _ "github.com/gogpu/sigpad/surface/ggsurface"
//
//	s, err := surface.New("gg", 600, 200)
//
// gg renders on the CPU by default. Programs that also import
// github.com/gogpu/gg/gpu get GPU acceleration without further changes.
package ggsurface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sigpad/surface"
)

// Surface adapts a *gg.Context to surface.Surface.
type Surface struct {
	dc     *gg.Context
	closed bool
}

var (
	_ surface.Surface     = (*Surface)(nil)
	_ surface.ImageDrawer = (*Surface)(nil)
)

func init() {
	surface.Register("gg", 50, func(opts surface.Options) (surface.Surface, error) {
		return New(opts.Width, opts.Height), nil
	})
}

// New creates a transparent gg-backed surface.
func New(width, height int, opts ...gg.ContextOption) *Surface {
	return &Surface{dc: gg.NewContext(width, height, opts...)}
}

// Wrap adapts an existing context. The surface takes ownership of dc and
// closes it on Close.
func Wrap(dc *gg.Context) *Surface {
	return &Surface{dc: dc}
}

// Context returns the underlying drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// BeginPath discards the pending path.
func (s *Surface) BeginPath() {
	s.dc.ClearPath()
}

// MoveTo starts a new sub-path.
func (s *Surface) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	s.dc.MoveTo(x, y)
}

// Arc appends a circular arc. gg continues an arc from the current point
// with a curve, so the arc start is reached with an explicit line first.
func (s *Surface) Arc(x, y, r, a1, a2 float64) {
	if !finite(x, y, r, a1, a2) || r < 0 {
		return
	}
	sx, sy := surface.ArcStart(x, y, r, a1)
	if _, _, ok := s.dc.GetCurrentPoint(); ok {
		s.dc.LineTo(sx, sy)
	} else {
		s.dc.MoveTo(sx, sy)
	}
	s.dc.DrawArc(x, y, r, a1, a2)
}

// ClosePath closes the current sub-path.
func (s *Surface) ClosePath() {
	s.dc.ClosePath()
}

// Fill paints the pending path with c and discards it.
func (s *Surface) Fill(c color.Color) error {
	if s.closed {
		return surface.ErrClosed
	}
	s.dc.SetColor(c)
	return s.dc.Fill()
}

// Clear replaces every pixel with c.
func (s *Surface) Clear(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// DrawImage replaces the context with one initialized from img scaled to
// the surface size, composited over the current contents.
func (s *Surface) DrawImage(img image.Image) {
	dst := s.Snapshot()
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	old := s.dc
	s.dc = gg.NewContextForImage(dst)
	_ = old.Close()
}

// Snapshot returns a copy of the current contents.
func (s *Surface) Snapshot() *image.RGBA {
	src := s.dc.Image()
	b := image.Rect(0, 0, s.dc.Width(), s.dc.Height())
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, src.Bounds().Min, draw.Src)
	return dst
}

// Close releases the context. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
