// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

// Package jscanvas draws on an HTML canvas element from WebAssembly.
//
// The surface forwards path operations to the element's
// CanvasRenderingContext2D, so strokes are rasterized by the browser:
//
//	canvas := js.Global().Get("document").Call("getElementById", "pad")
//	pad, err := sigpad.New(jscanvas.Wrap(canvas))
package jscanvas

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"syscall/js"

	"golang.org/x/image/draw"

	"github.com/gogpu/sigpad/surface"
)

// Surface is a surface.Surface backed by a canvas 2D context.
type Surface struct {
	canvas js.Value
	ctx    js.Value
	closed bool
}

var (
	_ surface.Surface     = (*Surface)(nil)
	_ surface.ImageDrawer = (*Surface)(nil)
)

// Wrap returns a surface drawing on the given canvas element.
func Wrap(canvas js.Value) *Surface {
	return &Surface{
		canvas: canvas,
		ctx:    canvas.Call("getContext", "2d"),
	}
}

// ByID returns a surface for the canvas element with the given id.
func ByID(id string) (*Surface, error) {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("jscanvas: no element with id %q", id)
	}
	return Wrap(el), nil
}

func (s *Surface) Width() int  { return s.canvas.Get("width").Int() }
func (s *Surface) Height() int { return s.canvas.Get("height").Int() }

func (s *Surface) BeginPath() { s.ctx.Call("beginPath") }

func (s *Surface) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	s.ctx.Call("moveTo", x, y)
}

func (s *Surface) Arc(x, y, r, a1, a2 float64) {
	if !finite(x, y, r, a1, a2) || r < 0 {
		return
	}
	s.ctx.Call("arc", x, y, r, a1, a2, false)
}

func (s *Surface) ClosePath() { s.ctx.Call("closePath") }

func (s *Surface) Fill(c color.Color) error {
	if s.closed {
		return surface.ErrClosed
	}
	s.ctx.Set("fillStyle", cssColor(c))
	s.ctx.Call("fill")
	s.ctx.Call("beginPath")
	return nil
}

func (s *Surface) Clear(c color.Color) {
	w, h := s.Width(), s.Height()
	s.ctx.Call("clearRect", 0, 0, w, h)
	if _, _, _, a := c.RGBA(); a != 0 {
		s.ctx.Set("fillStyle", cssColor(c))
		s.ctx.Call("fillRect", 0, 0, w, h)
	}
}

// DrawImage draws img scaled to the canvas, composited over the current
// contents.
func (s *Surface) DrawImage(img image.Image) {
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 {
		return
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	off := js.Global().Get("document").Call("createElement", "canvas")
	off.Set("width", w)
	off.Set("height", h)
	octx := off.Call("getContext", "2d")
	data := octx.Call("createImageData", w, h)
	js.CopyBytesToJS(data.Get("data"), dst.Pix)
	octx.Call("putImageData", data, 0, 0)
	s.ctx.Call("drawImage", off, 0, 0)
}

// Snapshot reads the canvas pixels back.
func (s *Surface) Snapshot() *image.RGBA {
	w, h := s.Width(), s.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return out
	}
	data := s.ctx.Call("getImageData", 0, 0, w, h).Get("data")
	src := image.NewNRGBA(out.Bounds())
	js.CopyBytesToGo(src.Pix, data)
	draw.Draw(out, out.Bounds(), src, image.Point{}, draw.Src)
	return out
}

// Close marks the surface closed. The canvas element is left untouched.
func (s *Surface) Close() error {
	s.closed = true
	return nil
}

// cssColor formats c as a CSS rgba() value.
func cssColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%.4g)", n.R, n.G, n.B, float64(n.A)/255)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
