package sigpad

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned (wrapped in a *ConfigError) when options
	// would produce an unusable configuration.
	ErrInvalidConfig = errors.New("sigpad: invalid configuration")

	// ErrNotStroking is returned (wrapped in a *StateError) when a point is
	// added or a stroke is ended while no stroke is in progress.
	ErrNotStroking = errors.New("sigpad: no stroke in progress")

	// ErrStrokeInProgress is returned (wrapped in a *StateError) when the
	// pad is reconfigured in the middle of a stroke.
	ErrStrokeInProgress = errors.New("sigpad: stroke in progress")

	// ErrImportUnsupported is returned when the surface cannot draw images.
	ErrImportUnsupported = errors.New("sigpad: surface does not support image import")
)

// ConfigError describes a rejected configuration value.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sigpad: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// StateError reports an operation that is not valid in the tracker's
// current state.
type StateError struct {
	Op    string
	State State
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%v (%s while %s)", e.Err, e.Op, e.State)
}

func (e *StateError) Unwrap() error { return e.Err }
