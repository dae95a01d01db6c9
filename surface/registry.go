// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"sync"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// RegistryEntry describes a registered surface backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order by Default (higher wins).
	// Built-in priorities: 50 gg, 10 image, 0 record.
	Priority int

	// Factory creates surface instances.
	Factory Factory
}

// Registry manages named surface backends. Backend packages register
// themselves from init, following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/sigpad/surface/ggsurface" // registers "gg"
//
//	s, err := surface.New("gg", 600, 200)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]RegistryEntry
}

var globalRegistry = NewRegistry()

// NewRegistry creates an empty registry.
// Most code should use the package-level functions.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]RegistryEntry)}
}

// Register adds a backend to the global registry.
// Registering an existing name replaces the previous entry.
// Register panics if factory is nil.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Backends returns the registered backend names, highest priority first.
func Backends() []string {
	return globalRegistry.Backends()
}

// New creates a surface with the named backend.
func New(name string, width, height int) (Surface, error) {
	return globalRegistry.New(name, Options{Width: width, Height: height})
}

// NewWithOptions creates a surface with the named backend.
func NewWithOptions(name string, opts Options) (Surface, error) {
	return globalRegistry.New(name, opts)
}

// Default creates a surface with the highest priority backend that
// succeeds.
func Default(width, height int) (Surface, error) {
	return globalRegistry.Default(Options{Width: width, Height: height})
}

// Register adds a backend to r.
func (r *Registry) Register(name string, priority int, factory Factory) {
	if factory == nil {
		panic("surface: Register factory is nil for " + name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = RegistryEntry{Name: name, Priority: priority, Factory: factory}
}

// Unregister removes a backend from r. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Backends returns names sorted by priority (highest first), then by name.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

// New creates a surface with the named backend.
func (r *Registry) New(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	return create(e, opts)
}

// Default tries each backend in priority order and returns the first
// surface created without error.
func (r *Registry) Default(opts Options) (Surface, error) {
	r.mu.RLock()
	names := r.sortedNames()
	entries := make([]RegistryEntry, len(names))
	for i, n := range names {
		entries[i] = r.entries[n]
	}
	r.mu.RUnlock()

	if len(entries) == 0 {
		return nil, ErrNoBackendAvailable
	}
	var errs []error
	for _, e := range entries {
		s, err := create(e, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(append([]error{ErrNoBackendAvailable}, errs...)...)
}

func create(e RegistryEntry, opts Options) (Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &InvalidSizeError{Width: opts.Width, Height: opts.Height}
	}
	s, err := e.Factory(opts)
	if err != nil {
		return nil, err
	}
	if opts.Background != nil {
		s.Clear(opts.Background)
	}
	return s, nil
}

// sortedNames must be called with the lock held.
func (r *Registry) sortedNames() []string {
	entries := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ErrNoBackendAvailable is returned by Default when no backend could create
// a surface.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name + " (forgotten import?)"
}

// InvalidSizeError is returned for non-positive surface dimensions.
type InvalidSizeError struct {
	Width, Height int
}

func (e *InvalidSizeError) Error() string {
	return "surface: invalid size " + strconv.Itoa(e.Width) + "x" + strconv.Itoa(e.Height)
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	})
}
