package sigpad

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/sigpad/imageio"
	"github.com/gogpu/sigpad/surface"
)

// Pad is a signature pad bound to one drawing surface.
//
// A Pad owns a Tracker and a Renderer. Input sources call BeginStroke,
// AddPoint and EndStroke as the pointer moves; every call is processed to
// completion, including drawing, before it returns.
//
// A Pad is not safe for concurrent use. Callers that receive input on
// several goroutines must serialize access.
type Pad struct {
	surface  surface.Surface
	opts     Options
	renderer *Renderer
	tracker  *Tracker
}

// New creates a pad drawing on s and clears s to the background color.
func New(s surface.Surface, opts ...Option) (*Pad, error) {
	if s == nil {
		return nil, fmt.Errorf("sigpad: nil surface")
	}
	o := DefaultOptions().Apply(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	r := NewRenderer(s, o.PenColor)
	p := &Pad{
		surface:  s,
		opts:     o,
		renderer: r,
		tracker:  NewTracker(r, o),
	}
	p.Clear()
	Logger().Debug("sigpad: pad created",
		"width", s.Width(),
		"height", s.Height(),
		"minWidth", o.MinWidth,
		"maxWidth", o.MaxWidth,
	)
	return p, nil
}

// Configure applies opts on top of the current configuration.
//
// It fails with a *StateError while a stroke is in progress and with a
// *ConfigError if the result is invalid. On failure the configuration is
// unchanged. A new background color takes effect on the next Clear.
func (p *Pad) Configure(opts ...Option) error {
	if p.tracker.State() == Stroking {
		return &StateError{Op: "Configure", State: Stroking, Err: ErrStrokeInProgress}
	}
	o := p.opts.Apply(opts...)
	if err := o.Validate(); err != nil {
		return err
	}
	p.opts = o
	p.tracker.configure(o)
	p.renderer.SetPenColor(o.PenColor)
	return nil
}

// Config returns the current configuration.
func (p *Pad) Config() Options {
	return p.opts
}

// Surface returns the surface the pad draws on.
func (p *Pad) Surface() surface.Surface {
	return p.surface
}

// State returns the stroke state.
func (p *Pad) State() State {
	return p.tracker.State()
}

// Stats returns the renderer's drawing counters.
func (p *Pad) Stats() Stats {
	return p.renderer.Stats()
}

// Clear fills the surface with the background color, abandons any stroke
// in progress and marks the pad empty.
func (p *Pad) Clear() {
	p.surface.Clear(p.opts.BackgroundColor)
	p.tracker.Reset()
	p.renderer.MarkEmpty()
}

// IsEmpty reports whether anything has been drawn or imported since the
// last Clear.
func (p *Pad) IsEmpty() bool {
	return p.renderer.IsEmpty()
}

// OnBegin sets the function called after each stroke begins.
// Only one function is kept; nil removes it.
func (p *Pad) OnBegin(fn func()) {
	p.tracker.OnBegin(fn)
}

// OnEnd sets the function called after each stroke ends.
// Only one function is kept; nil removes it.
func (p *Pad) OnEnd(fn func()) {
	p.tracker.OnEnd(fn)
}

// BeginStroke starts a stroke at pt. See [Tracker.BeginStroke].
func (p *Pad) BeginStroke(pt Point) error {
	return p.tracker.BeginStroke(pt)
}

// AddPoint adds a sample to the current stroke. See [Tracker.AddPoint].
func (p *Pad) AddPoint(pt Point) error {
	return p.tracker.AddPoint(pt)
}

// EndStroke ends the current stroke at pt. See [Tracker.EndStroke].
func (p *Pad) EndStroke(pt Point) error {
	return p.tracker.EndStroke(pt)
}

// EndStrokeHere ends the current stroke at its last sample.
func (p *Pad) EndStrokeHere() error {
	return p.tracker.EndStrokeHere()
}

// Image returns a copy of the surface contents.
func (p *Pad) Image() *image.RGBA {
	return p.surface.Snapshot()
}

// Export encodes the surface contents to w in format f.
func (p *Pad) Export(w io.Writer, f imageio.Format) error {
	if err := imageio.Encode(w, p.surface.Snapshot(), f); err != nil {
		return fmt.Errorf("sigpad: export: %w", err)
	}
	return nil
}

// ExportDataURL returns the surface contents as a base64 data URL.
func (p *Pad) ExportDataURL(f imageio.Format) (string, error) {
	var buf bytes.Buffer
	if err := p.Export(&buf, f); err != nil {
		return "", err
	}
	return imageio.DataURL(buf.Bytes(), f), nil
}

// Import decodes an image from r and draws it scaled to the surface on top
// of the current contents. Any stroke in progress is abandoned and the pad
// becomes non-empty.
func (p *Pad) Import(r io.Reader) error {
	img, err := imageio.Decode(r)
	if err != nil {
		return fmt.Errorf("sigpad: import: %w", err)
	}
	return p.drawImage(img)
}

// ImportDataURL is like Import for an image given as a data URL.
func (p *Pad) ImportDataURL(s string) error {
	img, err := imageio.DecodeDataURL(s)
	if err != nil {
		return fmt.Errorf("sigpad: import: %w", err)
	}
	return p.drawImage(img)
}

func (p *Pad) drawImage(img image.Image) error {
	d, ok := p.surface.(surface.ImageDrawer)
	if !ok {
		Logger().Warn("sigpad: import not supported by surface", "surface", fmt.Sprintf("%T", p.surface))
		return ErrImportUnsupported
	}
	p.tracker.Reset()
	d.DrawImage(img)
	p.renderer.markDrawn()
	Logger().Debug("sigpad: image imported", "bounds", img.Bounds().String())
	return nil
}
