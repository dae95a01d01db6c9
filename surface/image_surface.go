// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageSurface is a pure Go surface that rasterizes into an *image.RGBA
// with the anti-aliasing rasterizer from golang.org/x/image/vector.
//
// Coordinates that are NaN or infinite are ignored, as a browser canvas
// does.
//
// Example:
//
//	s := surface.NewImageSurface(600, 200)
//	s.Clear(color.White)
//	// draw ...
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA
	ras    *vector.Rasterizer

	// open reports whether the rasterizer has an unclosed sub-path.
	open bool
	// empty reports whether nothing has been added since the last reset.
	empty bool

	closed bool
}

var (
	_ Surface     = (*ImageSurface)(nil)
	_ ImageDrawer = (*ImageSurface)(nil)
)

// NewImageSurface creates a transparent surface. Non-positive dimensions
// are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	width, height = max(width, 1), max(height, 1)
	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:    vector.NewRasterizer(width, height),
		empty:  true,
	}
}

// NewImageSurfaceFrom creates a surface that draws into img. An image whose
// bounds do not start at the origin is copied first.
func NewImageSurfaceFrom(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	if b.Min != (image.Point{}) {
		// The rasterizer addresses pixels from the origin.
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		stddraw.Draw(dst, dst.Bounds(), img, b.Min, stddraw.Src)
		img = dst
	}
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
		ras:    vector.NewRasterizer(b.Dx(), b.Dy()),
		empty:  true,
	}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int { return s.height }

// Image returns the backing image. Drawing to the surface modifies it.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// BeginPath discards the pending path.
func (s *ImageSurface) BeginPath() {
	s.reset()
}

// MoveTo starts a new sub-path.
func (s *ImageSurface) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	s.closeOpen()
	s.ras.MoveTo(float32(x), float32(y))
	s.open = true
	s.empty = false
}

// Arc appends a circular arc, connected to the current point by a line.
func (s *ImageSurface) Arc(x, y, r, a1, a2 float64) {
	if !finite(x, y, r, a1, a2) || r < 0 {
		return
	}
	sx, sy := ArcStart(x, y, r, a1)
	if s.open {
		s.ras.LineTo(float32(sx), float32(sy))
	} else {
		s.ras.MoveTo(float32(sx), float32(sy))
		s.open = true
	}
	for _, seg := range ArcSegments(x, y, r, a1, a2) {
		s.ras.CubeTo(
			float32(seg.C1X), float32(seg.C1Y),
			float32(seg.C2X), float32(seg.C2Y),
			float32(seg.X), float32(seg.Y),
		)
	}
	s.empty = false
}

// ClosePath closes the current sub-path.
func (s *ImageSurface) ClosePath() {
	s.closeOpen()
}

// Fill paints the pending path with c and discards it.
func (s *ImageSurface) Fill(c color.Color) error {
	if s.closed {
		return ErrClosed
	}
	s.closeOpen()
	if !s.empty {
		s.ras.DrawOp = draw.Over
		s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
	}
	s.reset()
	return nil
}

// Clear replaces every pixel with c.
func (s *ImageSurface) Clear(c color.Color) {
	stddraw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, stddraw.Src)
}

// DrawImage draws img scaled to the surface bounds over the current
// contents.
func (s *ImageSurface) DrawImage(img image.Image) {
	draw.CatmullRom.Scale(s.img, s.img.Bounds(), img, img.Bounds(), draw.Over, nil)
}

// Snapshot returns a copy of the current contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	b := s.img.Bounds()
	dst := image.NewRGBA(b)
	stddraw.Draw(dst, b, s.img, b.Min, stddraw.Src)
	return dst
}

// Close marks the surface closed; later fills fail with ErrClosed.
// Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

func (s *ImageSurface) closeOpen() {
	if s.open {
		s.ras.ClosePath()
		s.open = false
	}
}

func (s *ImageSurface) reset() {
	s.ras.Reset(s.width, s.height)
	s.open = false
	s.empty = true
}
