package render

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name. It is meant to be called
// from a backend package's init function.
//
// Register panics if factory is nil or name is already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("render: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a backend by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Encode plays c back into a new backend called name and writes the
// result to w. The backend must implement WriterBackend.
func Encode(w io.Writer, c *Canvas, name string) error {
	b, err := NewBackend(name)
	if err != nil {
		return err
	}
	wb, ok := b.(WriterBackend)
	if !ok {
		return fmt.Errorf("render: backend %q cannot write output", name)
	}
	if err := c.Playback(wb); err != nil {
		return fmt.Errorf("render: %s playback: %w", name, err)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("render: %s write: %w", name, err)
	}
	return nil
}
