package sigpad

import "fmt"

type dotKind uint8

const (
	dotDefault dotKind = iota
	dotFixed
	dotComputed
)

// DotSize is the radius of the dot drawn when a stroke is too short to
// produce a curve. It is either a fixed value, a function evaluated each
// time a dot is drawn, or (the zero value) the midpoint between the
// configured minimum and maximum widths.
type DotSize struct {
	kind  dotKind
	value float64
	fn    func() float64
}

// FixedDotSize returns a DotSize that always resolves to d.
func FixedDotSize(d float64) DotSize {
	return DotSize{kind: dotFixed, value: d}
}

// ComputedDotSize returns a DotSize that calls fn whenever a dot is drawn.
// A nil fn behaves like the default.
func ComputedDotSize(fn func() float64) DotSize {
	if fn == nil {
		return DotSize{}
	}
	return DotSize{kind: dotComputed, fn: fn}
}

// Resolve returns the dot radius for the given width range.
func (d DotSize) Resolve(minWidth, maxWidth float64) float64 {
	switch d.kind {
	case dotFixed:
		return d.value
	case dotComputed:
		return d.fn()
	default:
		return (minWidth + maxWidth) / 2
	}
}

// IsDefault reports whether d is the zero value.
func (d DotSize) IsDefault() bool {
	return d.kind == dotDefault
}

func (d DotSize) String() string {
	switch d.kind {
	case dotFixed:
		return fmt.Sprintf("fixed(%g)", d.value)
	case dotComputed:
		return "computed"
	default:
		return "default"
	}
}
