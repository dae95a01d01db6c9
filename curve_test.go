package sigpad

import (
	"math"
	"testing"
)

func line(x0, y0, x1, y1 float64) Curve {
	dx, dy := (x1-x0)/3, (y1-y0)/3
	return NewCurve(
		at(x0, y0, 0),
		at(x0+dx, y0+dy, 0),
		at(x0+2*dx, y0+2*dy, 0),
		at(x1, y1, 0),
	)
}

func TestCurveEvalEndpoints(t *testing.T) {
	c := NewCurve(at(1, 2, 0), at(5, 9, 0), at(7, -3, 0), at(11, 4, 0))

	if x, y := c.Eval(0); x != 1 || y != 2 {
		t.Errorf("Eval(0) = (%v, %v), want (1, 2)", x, y)
	}
	if x, y := c.Eval(1); x != 11 || y != 4 {
		t.Errorf("Eval(1) = (%v, %v), want (11, 4)", x, y)
	}
}

func TestCurveEvalMidpoint(t *testing.T) {
	// B(0.5) = (P0 + 3·P1 + 3·P2 + P3) / 8
	c := NewCurve(at(0, 0, 0), at(0, 8, 0), at(8, 8, 0), at(8, 0, 0))
	x, y := c.Eval(0.5)
	if math.Abs(x-4) > 1e-12 || math.Abs(y-6) > 1e-12 {
		t.Errorf("Eval(0.5) = (%v, %v), want (4, 6)", x, y)
	}
}

func TestCurveLength(t *testing.T) {
	tests := []struct {
		name string
		c    Curve
		want float64
	}{
		{"horizontal", line(0, 0, 10, 0), 10},
		{"diagonal", line(0, 0, 30, 40), 50},
		{"degenerate", line(5, 5, 5, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Length(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurveLengthMonotone(t *testing.T) {
	curves := []Curve{
		NewCurve(at(0, 0, 0), at(0, 50, 0), at(50, 50, 0), at(50, 0, 0)),
		NewCurve(at(0, 0, 0), at(100, 100, 0), at(-100, 100, 0), at(0, 0, 0)),
		NewCurve(at(10, 10, 0), at(12, 30, 0), at(40, -5, 0), at(60, 20, 0)),
	}
	for i, c := range curves {
		prev := 0.0
		for steps := 1; steps <= 512; steps *= 2 {
			got := c.LengthSteps(steps)
			if got < prev-1e-9 {
				t.Errorf("curve %d: LengthSteps(%d) = %v, less than LengthSteps(%d) = %v",
					i, steps, got, steps/2, prev)
			}
			prev = got
		}
	}
}

func TestCurveLengthStepsClamp(t *testing.T) {
	c := line(0, 0, 7, 0)
	for _, steps := range []int{0, -3} {
		if got, want := c.LengthSteps(steps), c.LengthSteps(1); got != want {
			t.Errorf("LengthSteps(%d) = %v, want %v", steps, got, want)
		}
	}
}

func TestCurveLengthDefaultSteps(t *testing.T) {
	c := NewCurve(at(0, 0, 0), at(0, 50, 0), at(50, 50, 0), at(50, 0, 0))
	if got, want := c.Length(), c.LengthSteps(DefaultLengthSteps); got != want {
		t.Errorf("Length() = %v, want LengthSteps(%d) = %v", got, DefaultLengthSteps, want)
	}
}
