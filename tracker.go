package sigpad

import (
	"errors"
	"math"
)

// State is the stroke state of a Tracker.
type State uint8

const (
	// Idle means no stroke is in progress.
	Idle State = iota
	// Stroking means a stroke has begun and not yet ended.
	Stroking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Stroking:
		return "stroking"
	default:
		return "unknown"
	}
}

// windowSize is the number of samples a curve is fitted through.
const windowSize = 4

// Tracker turns pointer samples into curve segments.
//
// It keeps the last four samples of the current stroke. Each new sample
// beyond the third produces one cubic segment between the two middle
// samples, with tangents estimated from their neighbours, and a width
// derived from the filtered pointer velocity. Segments are drawn by the
// Renderer as soon as they are produced.
//
// The width and velocity of each segment depend on the previous segment,
// so samples must be fed in capture order.
type Tracker struct {
	renderer *Renderer
	opts     Options

	state        State
	points       []Point
	curves       int
	lastVelocity float64
	lastWidth    float64

	onBegin func()
	onEnd   func()
}

// NewTracker creates an idle tracker drawing through r. The options are
// used as given; callers are expected to have validated them.
func NewTracker(r *Renderer, opts Options) *Tracker {
	t := &Tracker{
		renderer: r,
		opts:     opts,
		points:   make([]Point, 0, windowSize),
	}
	t.resetStroke()
	return t
}

// State returns the current stroke state.
func (t *Tracker) State() State {
	return t.state
}

// Points returns a copy of the current sample window.
func (t *Tracker) Points() []Point {
	return append([]Point(nil), t.points...)
}

// LastWidth returns the width at the end of the last emitted segment, or the
// starting width if none has been emitted in this stroke.
func (t *Tracker) LastWidth() float64 {
	return t.lastWidth
}

// LastVelocity returns the filtered velocity of the last emitted segment.
func (t *Tracker) LastVelocity() float64 {
	return t.lastVelocity
}

// OnBegin sets the function called after a stroke begins. A later call
// replaces the previous function; nil removes it.
func (t *Tracker) OnBegin(fn func()) {
	t.onBegin = fn
}

// OnEnd sets the function called after a stroke ends. A later call
// replaces the previous function; nil removes it.
func (t *Tracker) OnEnd(fn func()) {
	t.onEnd = fn
}

// BeginStroke starts a new stroke at p.
//
// Calling BeginStroke during a stroke abandons the current stroke without
// an end notification and starts over, as a second pointer-down would.
func (t *Tracker) BeginStroke(p Point) error {
	if t.state == Stroking {
		Logger().Debug("sigpad: stroke restarted", "points", len(t.points))
	}
	t.resetStroke()
	t.state = Stroking
	Logger().Debug("sigpad: stroke begin", "x", p.X, "y", p.Y)

	err := t.addPoint(p)
	if t.onBegin != nil {
		t.onBegin()
	}
	return err
}

// AddPoint adds a sample to the current stroke and draws the segment it
// completes, if any. It returns a *StateError if no stroke is in progress.
func (t *Tracker) AddPoint(p Point) error {
	if t.state != Stroking {
		return &StateError{Op: "AddPoint", State: t.state, Err: ErrNotStroking}
	}
	return t.addPoint(p)
}

// EndStroke adds the final sample p and ends the stroke. A stroke too short
// to produce a curve is drawn as a single dot at its first sample.
// It returns a *StateError if no stroke is in progress.
func (t *Tracker) EndStroke(p Point) error {
	if t.state != Stroking {
		return &StateError{Op: "EndStroke", State: t.state, Err: ErrNotStroking}
	}
	err := t.addPoint(p)
	return errors.Join(err, t.finish())
}

// EndStrokeHere ends the stroke without adding a sample, for input sources
// that report the pointer release without a position.
func (t *Tracker) EndStrokeHere() error {
	if t.state != Stroking {
		return &StateError{Op: "EndStrokeHere", State: t.state, Err: ErrNotStroking}
	}
	return t.finish()
}

// Reset abandons any stroke in progress without notifications.
func (t *Tracker) Reset() {
	t.resetStroke()
	t.state = Idle
}

// StrokeWidth returns the line width for a filtered velocity: inversely
// related to speed, never below the minimum width.
func (t *Tracker) StrokeWidth(velocity float64) float64 {
	return math.Max(t.opts.MaxWidth/(velocity+1), t.opts.MinWidth)
}

func (t *Tracker) configure(opts Options) {
	t.opts = opts
}

func (t *Tracker) finish() error {
	var err error
	if t.curves == 0 && len(t.points) > 0 {
		radius := t.opts.DotSize.Resolve(t.opts.MinWidth, t.opts.MaxWidth)
		err = t.renderer.DrawDot(t.points[0], radius)
		Logger().Debug("sigpad: stroke drawn as dot", "radius", radius)
	}
	t.state = Idle
	Logger().Debug("sigpad: stroke end", "curves", t.curves)
	if t.onEnd != nil {
		t.onEnd()
	}
	return err
}

func (t *Tracker) resetStroke() {
	t.points = t.points[:0]
	t.curves = 0
	t.lastVelocity = 0
	t.lastWidth = t.opts.midWidth()
}

func (t *Tracker) addPoint(p Point) error {
	t.points = append(t.points, p)
	if len(t.points) <= 2 {
		return nil
	}

	// Repeat the first sample so the first two real samples already
	// produce a segment instead of waiting for a fourth one.
	if len(t.points) == 3 {
		t.points = append(t.points, Point{})
		copy(t.points[1:], t.points)
	}

	pts := t.points
	_, c2 := controlPoints(pts[0], pts[1], pts[2])
	c3, _ := controlPoints(pts[1], pts[2], pts[3])
	err := t.emitCurve(NewCurve(pts[1], c2, c3, pts[2]))

	// Keep the last three samples for the next one.
	copy(t.points, t.points[1:])
	t.points = t.points[:windowSize-1]
	return err
}

// emitCurve computes the segment width from the filtered velocity, draws
// the segment, and advances the filter state.
func (t *Tracker) emitCurve(c Curve) error {
	w := t.opts.VelocityFilterWeight
	velocity := w*c.End.VelocityFrom(c.Start) + (1-w)*t.lastVelocity
	newWidth := t.StrokeWidth(velocity)

	err := t.renderer.DrawCurve(c, t.lastWidth, newWidth)
	Logger().Debug("sigpad: curve",
		"velocity", velocity,
		"startWidth", t.lastWidth,
		"endWidth", newWidth,
	)

	t.lastVelocity = velocity
	t.lastWidth = newWidth
	t.curves++
	return err
}

// controlPoints returns control points for a smooth passage through s2:
// the segment between the midpoints of s1s2 and s2s3 is split in the ratio
// of the two side lengths and translated so the split point lies on s2.
// c1 is the control point before s2 and c2 the one after it.
func controlPoints(s1, s2, s3 Point) (c1, c2 Point) {
	m1 := s1.Mid(s2)
	m2 := s2.Mid(s3)

	l1 := s1.DistanceTo(s2)
	l2 := s2.DistanceTo(s3)

	// Three coincident samples: both midpoints already equal s2.
	var k float64
	if l1+l2 > 0 {
		k = l2 / (l1 + l2)
	}

	cm := m2.Add(m1.Sub(m2).Mul(k))
	tr := s2.Sub(cm)

	c1 = m1.Add(tr)
	c2 = m2.Add(tr)
	c1.Time, c2.Time = s2.Time, s2.Time
	return c1, c2
}
