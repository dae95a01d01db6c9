// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
)

// Surface is an immediate-mode drawing target with HTML canvas path
// semantics.
//
// Drawing happens in three steps: BeginPath discards any pending path,
// MoveTo and Arc accumulate sub-paths, and Fill paints every accumulated
// sub-path with the non-zero winding rule and then discards the path.
// MoveTo always starts a new sub-path. Arc first connects the current point
// to the start of the arc with a straight line, or starts a new sub-path
// there if there is no current point. Sub-paths left open are closed
// implicitly by Fill.
//
// Surfaces are not safe for concurrent use.
//
// Example:
//
//	s := surface.NewImageSurface(200, 100)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.BeginPath()
//	s.MoveTo(50, 50)
//	s.Arc(50, 50, 10, 0, 2*math.Pi)
//	s.ClosePath()
//	_ = s.Fill(color.Black)
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// BeginPath discards the pending path.
	BeginPath()

	// MoveTo starts a new sub-path at (x, y).
	MoveTo(x, y float64)

	// Arc appends a circular arc centered at (x, y) with radius r, from
	// angle a1 to a2 in radians, clockwise in screen coordinates.
	Arc(x, y, r, a1, a2 float64)

	// ClosePath closes the current sub-path.
	ClosePath()

	// Fill paints the pending path with c and discards it.
	Fill(c color.Color) error

	// Clear replaces every pixel with c.
	Clear(c color.Color)

	// Snapshot returns a copy of the current contents.
	Snapshot() *image.RGBA

	// Close releases resources. Close is idempotent.
	Close() error
}

// ErrClosed is returned when drawing to a closed surface.
var ErrClosed = errors.New("surface: closed")

// ImageDrawer is implemented by surfaces that can paint an existing image,
// which is needed to import previously exported content.
type ImageDrawer interface {
	// DrawImage draws img scaled to cover the whole surface.
	DrawImage(img image.Image)
}

// Options configures surfaces created through the registry.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Background is the initial fill. Nil leaves the surface transparent.
	Background color.Color
}
