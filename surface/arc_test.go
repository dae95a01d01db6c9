// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"
	"testing"
)

func TestArcSegmentsCount(t *testing.T) {
	tests := []struct {
		name   string
		a1, a2 float64
		want   int
	}{
		{"full circle", 0, 2 * math.Pi, 4},
		{"quarter", 0, math.Pi / 2, 1},
		{"just over quarter", 0, math.Pi/2 + 0.01, 2},
		{"half", math.Pi, 2 * math.Pi, 2},
		{"wraps", 3 * math.Pi / 2, math.Pi / 2, 2},
		{"empty", 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(ArcSegments(0, 0, 1, tt.a1, tt.a2)); got != tt.want {
				t.Errorf("len(ArcSegments()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestArcSegmentsOnCircle(t *testing.T) {
	const cx, cy, r = 10.0, 20.0, 5.0
	segs := ArcSegments(cx, cy, r, 0, 2*math.Pi)

	sx, sy := ArcStart(cx, cy, r, 0)
	if sx != 15 || sy != 20 {
		t.Errorf("ArcStart() = (%v, %v), want (15, 20)", sx, sy)
	}

	px, py := sx, sy
	for i, s := range segs {
		if d := math.Hypot(s.X-cx, s.Y-cy); math.Abs(d-r) > 1e-9 {
			t.Errorf("segment %d ends %v from center, want %v", i, d, r)
		}
		// Midpoint of each quarter is within 0.03% of the radius.
		mx := 0.125*px + 0.375*s.C1X + 0.375*s.C2X + 0.125*s.X
		my := 0.125*py + 0.375*s.C1Y + 0.375*s.C2Y + 0.125*s.Y
		if d := math.Hypot(mx-cx, my-cy); math.Abs(d-r) > r*3e-4 {
			t.Errorf("segment %d midpoint %v from center, want %v", i, d, r)
		}
		px, py = s.X, s.Y
	}
	if math.Abs(px-sx) > 1e-9 || math.Abs(py-sy) > 1e-9 {
		t.Errorf("full circle ends at (%v, %v), want (%v, %v)", px, py, sx, sy)
	}
}
