package sigpad

import "math"

// DefaultLengthSteps is the number of chords used by [Curve.Length].
const DefaultLengthSteps = 10

// Curve is a cubic Bézier segment from Start to End shaped by two control
// points.
type Curve struct {
	Start    Point
	Control1 Point
	Control2 Point
	End      Point
}

// NewCurve creates a curve from its four defining points.
func NewCurve(start, c1, c2, end Point) Curve {
	return Curve{Start: start, Control1: c1, Control2: c2, End: end}
}

// Eval evaluates the curve at parameter t (0 to 1) using the Bernstein
// basis.
func (c Curve) Eval(t float64) (x, y float64) {
	return bezier(t, c.Start.X, c.Control1.X, c.Control2.X, c.End.X),
		bezier(t, c.Start.Y, c.Control1.Y, c.Control2.Y, c.End.Y)
}

// Length approximates the arc length with [DefaultLengthSteps] chords.
func (c Curve) Length() float64 {
	return c.LengthSteps(DefaultLengthSteps)
}

// LengthSteps approximates the arc length by sampling the curve at steps+1
// evenly spaced parameters and summing the chord lengths. The result never
// exceeds the true arc length and approaches it as steps grows. Values of
// steps below 1 are treated as 1.
func (c Curve) LengthSteps(steps int) float64 {
	if steps < 1 {
		steps = 1
	}
	var length, px, py float64
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y := c.Eval(t)
		if i > 0 {
			length += math.Hypot(x-px, y-py)
		}
		px, py = x, y
	}
	return length
}

// bezier evaluates one coordinate of a cubic Bézier.
func bezier(t, p0, p1, p2, p3 float64) float64 {
	u := 1 - t
	return u*u*u*p0 +
		3*u*u*t*p1 +
		3*u*t*t*p2 +
		t*t*t*p3
}
