package sigpad

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// linePoints returns n samples starting at (x0, y0), each (dx, dy) and
// stepMS milliseconds after the previous one.
func linePoints(x0, y0, dx, dy float64, n, stepMS int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = at(x0+float64(i)*dx, y0+float64(i)*dy, i*stepMS)
	}
	return pts
}

type stroker interface {
	BeginStroke(Point) error
	AddPoint(Point) error
	EndStroke(Point) error
	EndStrokeHere() error
}

// drawStroke feeds pts as one stroke. A single point is a tap.
func drawStroke(t *testing.T, s stroker, pts ...Point) {
	t.Helper()
	if err := s.BeginStroke(pts[0]); err != nil {
		t.Fatalf("BeginStroke() error = %v", err)
	}
	if len(pts) == 1 {
		if err := s.EndStrokeHere(); err != nil {
			t.Fatalf("EndStrokeHere() error = %v", err)
		}
		return
	}
	for _, p := range pts[1 : len(pts)-1] {
		if err := s.AddPoint(p); err != nil {
			t.Fatalf("AddPoint() error = %v", err)
		}
	}
	if err := s.EndStroke(pts[len(pts)-1]); err != nil {
		t.Fatalf("EndStroke() error = %v", err)
	}
}
