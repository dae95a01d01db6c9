package sigpad

import (
	"math"
	"time"
)

// Point is a pointer sample: a position on the surface and the time it was
// captured. Points are values; all methods return new points.
type Point struct {
	X, Y float64
	Time time.Time
}

// NewPoint creates a point captured now.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Time: time.Now()}
}

// PointAt creates a point captured at t.
func PointAt(x, y float64, t time.Time) Point {
	return Point{X: x, Y: y, Time: t}
}

// Add returns the vector sum of p and q. The result keeps p's time.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Time: p.Time}
}

// Sub returns the vector difference p - q. The result keeps p's time.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Time: p.Time}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Time: p.Time}
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, Time: p.Time}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// VelocityFrom returns the speed of travel from start to p in surface units
// per millisecond.
//
// When both samples carry the same timestamp the velocity is 1. Input
// devices regularly report several samples within one clock tick and they
// should still contribute to the stroke. Samples delivered out of order
// use the absolute elapsed time, so the velocity is never negative.
func (p Point) VelocityFrom(start Point) float64 {
	elapsed := p.Time.Sub(start.Time)
	if elapsed == 0 {
		return 1
	}
	if elapsed < 0 {
		elapsed = -elapsed
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	return p.DistanceTo(start) / ms
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
