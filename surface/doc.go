// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the drawing targets a signature pad renders to.
//
// A Surface exposes the small subset of the HTML canvas path API the pad
// needs: BeginPath, MoveTo, Arc, ClosePath and Fill, plus Clear and
// Snapshot. Surfaces that can also paint an existing image implement
// ImageDrawer, which enables importing previously exported signatures.
//
// # Surface Types
//
//   - ImageSurface: pure Go rasterization into *image.RGBA using
//     golang.org/x/image/vector
//   - ggsurface.Surface: rendering through a gogpu/gg Context
//   - jscanvas.Surface: a browser canvas element (js/wasm only)
//   - recording.Recorder: captures commands instead of pixels
//
// # Registry
//
// Backends register themselves by name and priority, so programs can pick
// one at run time:
//
//	import _ "github.com/gogpu/sigpad/surface/ggsurface"
//
//	s, err := surface.New("gg", 600, 200)
//	// or the highest priority backend that works:
//	s, err = surface.Default(600, 200)
//
// The "image" backend is always registered.
package surface
