// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "math"

// CubicSegment is one cubic Bézier piece of an approximated arc. The start
// point is the end of the previous segment (or the arc start).
type CubicSegment struct {
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

// ArcStart returns the point at angle a on the circle centered at (x, y).
func ArcStart(x, y, r, a float64) (float64, float64) {
	return x + r*math.Cos(a), y + r*math.Sin(a)
}

// ArcSegments approximates the arc from a1 to a2 with cubic Béziers of at
// most a quarter turn each. a2 is advanced by full turns until it is not
// below a1, so a full circle is expressed as (0, 2π).
func ArcSegments(x, y, r, a1, a2 float64) []CubicSegment {
	const twoPi = 2 * math.Pi
	for a2 < a1 {
		a2 += twoPi
	}
	sweep := a2 - a1
	if sweep == 0 {
		return nil
	}

	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	// Control point distance for a circular arc of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([]CubicSegment, n)
	for i := range segs {
		t1 := a1 + float64(i)*step
		t2 := t1 + step
		cos1, sin1 := math.Cos(t1), math.Sin(t1)
		cos2, sin2 := math.Cos(t2), math.Sin(t2)
		segs[i] = CubicSegment{
			C1X: x + r*(cos1-k*sin1),
			C1Y: y + r*(sin1+k*cos1),
			C2X: x + r*(cos2+k*sin2),
			C2Y: y + r*(sin2-k*cos2),
			X:   x + r*cos2,
			Y:   y + r*sin2,
		}
	}
	return segs
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
