package main

import (
	"fmt"
	"image/color"
	"io"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sigpad"
	"github.com/gogpu/sigpad/imageio"
	"github.com/gogpu/sigpad/surface"
)

// padWidget is a fyne widget that feeds pointer events to a sigpad.Pad and
// shows the surface it draws on.
type padWidget struct {
	widget.BaseWidget

	mu      sync.Mutex
	pad     *sigpad.Pad
	surf    *surface.ImageSurface
	image   *canvas.Image
	drawing bool
	strokes int

	// OnStatus receives short status messages.
	OnStatus func(string)
}

var _ fyne.Widget = (*padWidget)(nil)
var _ fyne.Draggable = (*padWidget)(nil)
var _ desktop.Mouseable = (*padWidget)(nil)

func newPadWidget(width, height int, opts ...sigpad.Option) (*padWidget, error) {
	surf := surface.NewImageSurface(width, height)
	pad, err := sigpad.New(surf, opts...)
	if err != nil {
		return nil, err
	}

	w := &padWidget{pad: pad, surf: surf}
	w.image = canvas.NewImageFromImage(pad.Image())
	w.image.FillMode = canvas.ImageFillOriginal
	w.image.ScaleMode = canvas.ImageScalePixels

	pad.OnBegin(func() { w.status("drawing") })
	pad.OnEnd(func() {
		w.strokes++
		w.status(fmt.Sprintf("%d strokes", w.strokes))
	})
	w.ExtendBaseWidget(w)
	return w, nil
}

func (w *padWidget) status(s string) {
	if w.OnStatus != nil {
		w.OnStatus(s)
	}
}

// sample converts a widget position to a pad point stamped now.
func sample(pos fyne.Position) sigpad.Point {
	return sigpad.PointAt(float64(pos.X), float64(pos.Y), time.Now())
}

func (w *padWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.mu.Lock()
	w.drawing = true
	err := w.pad.BeginStroke(sample(e.Position))
	w.mu.Unlock()
	w.report(err)
}

func (w *padWidget) Dragged(e *fyne.DragEvent) {
	w.mu.Lock()
	if !w.drawing {
		w.mu.Unlock()
		return
	}
	err := w.pad.AddPoint(sample(e.Position))
	w.mu.Unlock()
	w.report(err)
}

func (w *padWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.mu.Lock()
	if !w.drawing {
		w.mu.Unlock()
		return
	}
	w.drawing = false
	err := w.pad.EndStroke(sample(e.Position))
	w.mu.Unlock()
	w.report(err)
}

func (w *padWidget) DragEnd() {}

// Clear erases the pad.
func (w *padWidget) Clear() {
	w.mu.Lock()
	w.pad.Clear()
	w.drawing = false
	w.strokes = 0
	w.mu.Unlock()
	w.status("cleared")
	w.Refresh()
}

// Save encodes the pad contents to wc in format f.
func (w *padWidget) Save(wc io.WriteCloser, f imageio.Format) error {
	defer wc.Close()
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pad.IsEmpty() {
		return fmt.Errorf("nothing to save")
	}
	return w.pad.Export(wc, f)
}

// Load draws an image from rc onto the pad.
func (w *padWidget) Load(rc io.ReadCloser) error {
	defer rc.Close()
	w.mu.Lock()
	err := w.pad.Import(rc)
	w.drawing = false
	w.mu.Unlock()
	w.Refresh()
	return err
}

// report refreshes the widget after a drawing call and surfaces errors.
func (w *padWidget) report(err error) {
	if err != nil {
		sigpad.Logger().Warn("pad event failed", "err", err)
		w.status(err.Error())
	}
	w.Refresh()
}

func (w *padWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.White)
	return &padRenderer{w: w, bg: bg}
}

type padRenderer struct {
	w  *padWidget
	bg *canvas.Rectangle
}

func (r *padRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.w.image}
}

func (r *padRenderer) Refresh() {
	r.w.mu.Lock()
	r.w.image.Image = r.w.pad.Image()
	r.w.mu.Unlock()
	r.w.image.Refresh()
	canvas.Refresh(r.w)
}

func (r *padRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.w.image.Move(fyne.NewPos(0, 0))
	r.w.image.Resize(r.MinSize())
}

func (r *padRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.w.surf.Width()), float32(r.w.surf.Height()))
}

func (r *padRenderer) Destroy() {}

func (w *padWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *padWidget) MouseOut()                      {}
func (w *padWidget) MouseMoved(*desktop.MouseEvent) {}
