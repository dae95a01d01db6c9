package recording

import (
	"image"
	"image/color"

	"github.com/gogpu/sigpad/surface"
)

// Recorder is a surface that captures drawing operations as commands
// instead of rasterizing them. Recordings can be inspected, counted, and
// replayed onto any other surface.
//
// Example:
//
//	rec := recording.NewRecorder(600, 200)
//	pad, _ := sigpad.New(rec)
//	// ... strokes ...
//	stamps := rec.Count(recording.CmdArc)
//	_ = rec.Playback(surface.NewImageSurface(600, 200))
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	closed        bool
}

var (
	_ surface.Surface     = (*Recorder)(nil)
	_ surface.ImageDrawer = (*Recorder)(nil)
)

func init() {
	surface.Register("record", 0, func(opts surface.Options) (surface.Surface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	})
}

// NewRecorder creates an empty recorder for a surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// Width returns the recorded surface width.
func (r *Recorder) Width() int { return r.width }

// Height returns the recorded surface height.
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) BeginPath() { r.record(BeginPathCommand{}) }

func (r *Recorder) MoveTo(x, y float64) { r.record(MoveToCommand{X: x, Y: y}) }

func (r *Recorder) Arc(x, y, radius, a1, a2 float64) {
	r.record(ArcCommand{X: x, Y: y, Radius: radius, Start: a1, End: a2})
}

func (r *Recorder) ClosePath() { r.record(ClosePathCommand{}) }

// Fill records a fill. It fails only after Close.
func (r *Recorder) Fill(c color.Color) error {
	if r.closed {
		return surface.ErrClosed
	}
	r.record(FillCommand{Color: c})
	return nil
}

func (r *Recorder) Clear(c color.Color) { r.record(ClearCommand{Color: c}) }

// DrawImage records a copy of img. A nil or empty image is recorded with
// InvalidRef and skipped on playback.
func (r *Recorder) DrawImage(img image.Image) {
	r.record(DrawImageCommand{Image: r.resources.AddImage(img)})
}

// Image returns the recorded image for ref.
func (r *Recorder) Image(ref ImageRef) image.Image {
	return r.resources.GetImage(ref)
}

// Snapshot rasterizes the recording onto a fresh image surface.
func (r *Recorder) Snapshot() *image.RGBA {
	s := surface.NewImageSurface(r.width, r.height)
	_ = r.Playback(s)
	return s.Snapshot()
}

// Close marks the recorder closed. Recorded commands stay available.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Commands returns the recorded commands in order. The slice must not be
// modified.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns the number of recorded commands of type t.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands and images.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
}

// Playback replays the recorded commands onto dst and returns the first
// fill error.
func (r *Recorder) Playback(dst surface.Surface) error {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginPathCommand:
			dst.BeginPath()
		case MoveToCommand:
			dst.MoveTo(c.X, c.Y)
		case ArcCommand:
			dst.Arc(c.X, c.Y, c.Radius, c.Start, c.End)
		case ClosePathCommand:
			dst.ClosePath()
		case FillCommand:
			if err := dst.Fill(c.Color); err != nil {
				return err
			}
		case ClearCommand:
			dst.Clear(c.Color)
		case DrawImageCommand:
			if !c.Image.IsValid() {
				continue
			}
			if d, ok := dst.(surface.ImageDrawer); ok {
				d.DrawImage(r.resources.GetImage(c.Image))
			}
		}
	}
	return nil
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}
