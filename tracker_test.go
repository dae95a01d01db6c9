package sigpad

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/sigpad/recording"
)

func newTestTracker(opts ...Option) (*Tracker, *recording.Recorder) {
	rec := recording.NewRecorder(200, 200)
	o := DefaultOptions().Apply(opts...)
	return NewTracker(NewRenderer(rec, o.PenColor), o), rec
}

// arcs returns the recorded arc commands.
func arcs(rec *recording.Recorder) []recording.ArcCommand {
	var out []recording.ArcCommand
	for _, c := range rec.Commands() {
		if a, ok := c.(recording.ArcCommand); ok {
			out = append(out, a)
		}
	}
	return out
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Idle, "idle"},
		{Stroking, "stroking"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestControlPoints(t *testing.T) {
	c1, c2 := controlPoints(at(0, 0, 0), at(10, 0, 0), at(10, 10, 0))
	diff(t, at(7.5, -2.5, 0), c1)
	diff(t, at(12.5, 2.5, 0), c2)
}

func TestControlPointsTranslation(t *testing.T) {
	tests := []struct {
		name       string
		s1, s2, s3 Point
	}{
		{"right angle", at(0, 0, 0), at(10, 0, 0), at(10, 10, 0)},
		{"uneven sides", at(0, 0, 0), at(3, 4, 0), at(40, 4, 0)},
		{"collinear", at(0, 0, 0), at(5, 5, 0), at(20, 20, 0)},
		{"reversal", at(0, 0, 0), at(10, 0, 0), at(2, 0, 0)},
		{"repeated first", at(4, 4, 0), at(4, 4, 0), at(9, 1, 0)},
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c1, c2 := controlPoints(tt.s1, tt.s2, tt.s3)

			m1 := tt.s1.Mid(tt.s2)
			m2 := tt.s2.Mid(tt.s3)
			l1 := tt.s1.DistanceTo(tt.s2)
			l2 := tt.s2.DistanceTo(tt.s3)
			k := l2 / (l1 + l2)

			// The control segment is the midpoint segment moved so that its
			// k-split point lands on s2.
			diff(t, m1.Sub(m2), c1.Sub(c2), approx)
			got := c2.Add(c1.Sub(c2).Mul(k))
			diff(t, [2]float64{tt.s2.X, tt.s2.Y}, [2]float64{got.X, got.Y}, approx)
		})
	}
}

func TestControlPointsCoincident(t *testing.T) {
	p := at(7, 3, 0)
	c1, c2 := controlPoints(p, p, p)
	for _, c := range []Point{c1, c2} {
		if !c.IsFinite() {
			t.Fatalf("controlPoints(p, p, p) = %v, %v; want finite", c1, c2)
		}
		if c.X != p.X || c.Y != p.Y {
			t.Errorf("control point = (%v, %v), want (%v, %v)", c.X, c.Y, p.X, p.Y)
		}
	}
}

func TestTrackerStrokeWidth(t *testing.T) {
	tr, _ := newTestTracker()
	tests := []struct {
		v    float64
		want float64
	}{
		{0, 2.5},
		{1, 1.25},
		{4, 0.5},
		{100, 0.5},
	}
	for _, tt := range tests {
		if got := tr.StrokeWidth(tt.v); got != tt.want {
			t.Errorf("StrokeWidth(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestTrackerWarmUp(t *testing.T) {
	tr, rec := newTestTracker()
	pts := linePoints(0, 0, 20, 0, 3, 10)

	if err := tr.BeginStroke(pts[0]); err != nil {
		t.Fatal(err)
	}
	if err := tr.AddPoint(pts[1]); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(recording.CmdFill); n != 0 {
		t.Fatalf("fills after two samples = %d, want 0", n)
	}
	if err := tr.AddPoint(pts[2]); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(recording.CmdFill); n != 1 {
		t.Fatalf("fills after three samples = %d, want 1", n)
	}

	// The first curve runs between the first two samples.
	as := arcs(rec)
	if as[0].X != 0 || as[0].Y != 0 {
		t.Errorf("first stamp at (%v, %v), want (0, 0)", as[0].X, as[0].Y)
	}
	if last := as[len(as)-1]; last.X >= 20 {
		t.Errorf("last stamp at x = %v, want < 20", last.X)
	}
	diff(t, pts, tr.Points())
}

func TestTrackerCurveCount(t *testing.T) {
	for _, n := range []int{3, 4, 5, 10} {
		tr, _ := newTestTracker()
		drawStroke(t, tr, linePoints(0, 0, 15, 3, n, 16)...)
		if got := tr.renderer.Stats(); got.Curves != n-2 || got.Dots != 0 {
			t.Errorf("%d samples: Stats() = %+v, want %d curves and no dots", n, got, n-2)
		}
	}
}

func TestTrackerTapDrawsDot(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"tap", []Point{at(50, 60, 0)}},
		{"press and release", []Point{at(50, 60, 0), at(50, 60, 80)}},
		{"two samples", []Point{at(50, 60, 0), at(52, 61, 16)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, rec := newTestTracker()
			drawStroke(t, tr, tt.pts...)

			want := []recording.Command{
				recording.BeginPathCommand{},
				recording.MoveToCommand{X: 50, Y: 60},
				recording.ArcCommand{X: 50, Y: 60, Radius: 1.5, Start: 0, End: 2 * math.Pi},
				recording.ClosePathCommand{},
				recording.FillCommand{Color: color.Black},
			}
			diff(t, want, rec.Commands())
			if got := tr.renderer.Stats(); got != (Stats{Dots: 1}) {
				t.Errorf("Stats() = %+v, want one dot", got)
			}
		})
	}
}

func TestTrackerDotSize(t *testing.T) {
	tests := []struct {
		name string
		size DotSize
		want float64
	}{
		{"default", DotSize{}, 1.5},
		{"fixed", FixedDotSize(8), 8},
		{"computed", ComputedDotSize(func() float64 { return 3 }), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, rec := newTestTracker(WithDotSize(tt.size))
			drawStroke(t, tr, at(1, 1, 0))
			as := arcs(rec)
			if len(as) != 1 {
				t.Fatalf("arcs = %d, want 1", len(as))
			}
			if got := as[0].Radius; got != tt.want {
				t.Errorf("dot radius = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackerWidthsWithinBounds(t *testing.T) {
	opts := []Option{WithMinWidth(1), WithMaxWidth(6), WithVelocityFilterWeight(0.5)}
	tr, rec := newTestTracker(opts...)

	// A wobbly path with irregular timing: fast, slow and stalled samples.
	var pts []Point
	ms := 0
	for i := range 60 {
		x := float64(i) * 7
		y := 100 + 40*math.Sin(float64(i)/4)
		pts = append(pts, at(x, y, ms))
		ms += []int{1, 16, 0, 50, 4}[i%5]
	}
	drawStroke(t, tr, pts...)

	for i, a := range arcs(rec) {
		w := a.Radius * 2
		if w < 1-1e-9 || w > 6+1e-9 {
			t.Fatalf("stamp %d width = %v, want within [1, 6]", i, w)
		}
	}
	if rec.Count(recording.CmdArc) == 0 {
		t.Fatal("no stamps recorded")
	}
}

func TestTrackerConstantVelocity(t *testing.T) {
	tr, _ := newTestTracker()
	pts := linePoints(0, 50, 10, 0, 40, 10) // 1 unit/ms

	if err := tr.BeginStroke(pts[0]); err != nil {
		t.Fatal(err)
	}
	prev := tr.LastWidth()
	if prev != 1.5 {
		t.Fatalf("initial width = %v, want 1.5", prev)
	}
	for _, p := range pts[1:] {
		if err := tr.AddPoint(p); err != nil {
			t.Fatal(err)
		}
		w := tr.LastWidth()
		if w > prev {
			t.Fatalf("width increased from %v to %v at constant velocity", prev, w)
		}
		prev = w
	}
	// Filtered velocity converges to 1, so the width converges to max/2.
	if math.Abs(prev-1.25) > 1e-3 {
		t.Errorf("converged width = %v, want 1.25", prev)
	}
	if math.Abs(tr.LastVelocity()-1) > 1e-3 {
		t.Errorf("converged velocity = %v, want 1", tr.LastVelocity())
	}
}

func TestTrackerVelocityFilter(t *testing.T) {
	tr, _ := newTestTracker(WithVelocityFilterWeight(0.7))
	pts := linePoints(0, 0, 10, 0, 4, 10)

	drawStroke(t, tr, pts[:3]...)
	// One curve at 1 unit/ms from a resting filter.
	if got := tr.LastVelocity(); math.Abs(got-0.7) > 1e-12 {
		t.Errorf("LastVelocity() = %v, want 0.7", got)
	}
	if got, want := tr.LastWidth(), 2.5/1.7; math.Abs(got-want) > 1e-12 {
		t.Errorf("LastWidth() = %v, want %v", got, want)
	}
}

func TestTrackerBeginResetsStroke(t *testing.T) {
	tr, _ := newTestTracker()
	drawStroke(t, tr, linePoints(0, 0, 10, 0, 6, 2)...)

	if err := tr.BeginStroke(at(5, 5, 100)); err != nil {
		t.Fatal(err)
	}
	if tr.LastVelocity() != 0 || tr.LastWidth() != 1.5 {
		t.Errorf("after BeginStroke velocity = %v, width = %v; want 0, 1.5", tr.LastVelocity(), tr.LastWidth())
	}
	diff(t, []Point{at(5, 5, 100)}, tr.Points())
}

func TestTrackerStateErrors(t *testing.T) {
	tr, rec := newTestTracker()

	tests := []struct {
		op  string
		err error
	}{
		{"AddPoint", tr.AddPoint(at(1, 1, 0))},
		{"EndStroke", tr.EndStroke(at(1, 1, 0))},
		{"EndStrokeHere", tr.EndStrokeHere()},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, ErrNotStroking) {
			t.Errorf("%s while idle: error = %v, want ErrNotStroking", tt.op, tt.err)
		}
		var se *StateError
		if !errors.As(tt.err, &se) {
			t.Errorf("%s while idle: error %T is not *StateError", tt.op, tt.err)
			continue
		}
		if se.Op != tt.op || se.State != Idle {
			t.Errorf("StateError = %+v, want Op %s in Idle", se, tt.op)
		}
	}
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("rejected calls recorded %d commands, want 0", n)
	}
}

func TestTrackerObservers(t *testing.T) {
	tr, _ := newTestTracker()

	var begins, ends int
	tr.OnBegin(func() {
		begins++
		if tr.State() != Stroking {
			t.Errorf("begin observer saw state %v, want stroking", tr.State())
		}
	})
	tr.OnEnd(func() {
		ends++
		if tr.State() != Idle {
			t.Errorf("end observer saw state %v, want idle", tr.State())
		}
	})

	drawStroke(t, tr, linePoints(0, 0, 10, 0, 5, 10)...)
	drawStroke(t, tr, at(3, 3, 0))
	if begins != 2 || ends != 2 {
		t.Errorf("begins, ends = %d, %d; want 2, 2", begins, ends)
	}
}

func TestTrackerRestartWithoutEnd(t *testing.T) {
	tr, _ := newTestTracker()
	var begins, ends int
	tr.OnBegin(func() { begins++ })
	tr.OnEnd(func() { ends++ })

	_ = tr.BeginStroke(at(0, 0, 0))
	_ = tr.AddPoint(at(10, 0, 10))
	_ = tr.BeginStroke(at(50, 50, 20))

	if begins != 2 || ends != 0 {
		t.Errorf("begins, ends = %d, %d; want 2, 0", begins, ends)
	}
	if tr.State() != Stroking {
		t.Errorf("State() = %v, want stroking", tr.State())
	}
}

func TestTrackerNonFiniteSample(t *testing.T) {
	tr, _ := newTestTracker()
	pts := linePoints(0, 0, 10, 0, 5, 10)
	pts[2].X = math.NaN()
	drawStroke(t, tr, pts...)
	if tr.State() != Idle {
		t.Errorf("State() = %v, want idle", tr.State())
	}
}
