package sigpad

import (
	"image/color"
	"math"
)

// Default configuration values.
const (
	DefaultMinWidth             = 0.5
	DefaultMaxWidth             = 2.5
	DefaultVelocityFilterWeight = 0.7
)

// Options is the pad configuration. It is fixed for the duration of a
// stroke and can only change between strokes through [Pad.Configure].
type Options struct {
	// MinWidth is the thinnest line drawn, reached at high pointer speed.
	MinWidth float64

	// MaxWidth bounds the line width when the pointer is slow.
	MaxWidth float64

	// DotSize is the radius of the dot drawn for a tap.
	DotSize DotSize

	// PenColor fills strokes and dots.
	PenColor color.Color

	// BackgroundColor fills the surface on Clear.
	BackgroundColor color.Color

	// VelocityFilterWeight is the weight of the newest velocity sample in
	// the exponential filter, conventionally in [0, 1].
	VelocityFilterWeight float64
}

// Option configures a Pad.
//
// Example:
//
//	pad, err := sigpad.New(s,
//	    sigpad.WithMinWidth(1),
//	    sigpad.WithMaxWidth(4),
//	    sigpad.WithPenColor(color.RGBA{0, 0, 128, 255}),
//	)
type Option func(*Options)

// DefaultOptions returns the default configuration: widths 0.5 to 2.5,
// velocity filter weight 0.7, black pen on a transparent background.
func DefaultOptions() Options {
	return Options{
		MinWidth:             DefaultMinWidth,
		MaxWidth:             DefaultMaxWidth,
		PenColor:             color.Black,
		BackgroundColor:      color.Transparent,
		VelocityFilterWeight: DefaultVelocityFilterWeight,
	}
}

// WithMinWidth sets the minimum stroke width.
func WithMinWidth(w float64) Option {
	return func(o *Options) {
		o.MinWidth = w
	}
}

// WithMaxWidth sets the maximum stroke width.
func WithMaxWidth(w float64) Option {
	return func(o *Options) {
		o.MaxWidth = w
	}
}

// WithDotSize sets the size of tap dots.
func WithDotSize(d DotSize) Option {
	return func(o *Options) {
		o.DotSize = d
	}
}

// WithPenColor sets the ink color.
func WithPenColor(c color.Color) Option {
	return func(o *Options) {
		o.PenColor = c
	}
}

// WithBackgroundColor sets the color used to clear the surface.
func WithBackgroundColor(c color.Color) Option {
	return func(o *Options) {
		o.BackgroundColor = c
	}
}

// WithVelocityFilterWeight sets the weight of the newest velocity sample.
// Larger values react faster to speed changes, smaller values smooth more.
func WithVelocityFilterWeight(w float64) Option {
	return func(o *Options) {
		o.VelocityFilterWeight = w
	}
}

// Apply returns a copy of o with opts applied in order.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Validate checks that the configuration can be drawn with.
// It returns a *ConfigError for the first offending field.
func (o Options) Validate() error {
	switch {
	case !finite(o.MinWidth) || o.MinWidth < 0:
		return &ConfigError{Field: "MinWidth", Value: o.MinWidth, Reason: "must be a non-negative number"}
	case !finite(o.MaxWidth) || o.MaxWidth < 0:
		return &ConfigError{Field: "MaxWidth", Value: o.MaxWidth, Reason: "must be a non-negative number"}
	case o.MinWidth > o.MaxWidth:
		return &ConfigError{Field: "MinWidth", Value: o.MinWidth, Reason: "exceeds MaxWidth"}
	case !finite(o.VelocityFilterWeight) || o.VelocityFilterWeight < 0 || o.VelocityFilterWeight > 1:
		return &ConfigError{Field: "VelocityFilterWeight", Value: o.VelocityFilterWeight, Reason: "must be within [0, 1]"}
	case o.DotSize.kind == dotFixed && (!finite(o.DotSize.value) || o.DotSize.value < 0):
		return &ConfigError{Field: "DotSize", Value: o.DotSize.value, Reason: "must be a non-negative number"}
	case o.PenColor == nil:
		return &ConfigError{Field: "PenColor", Value: nil, Reason: "is nil"}
	case o.BackgroundColor == nil:
		return &ConfigError{Field: "BackgroundColor", Value: nil, Reason: "is nil"}
	}
	return nil
}

// midWidth is the width a stroke starts with.
func (o Options) midWidth() float64 {
	return (o.MinWidth + o.MaxWidth) / 2
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
