// Package codec provides the compression algorithm backends and their
// registry.
//
// Each backend wraps a streaming compression library behind the core.Codec
// contract: whole-buffer helpers for small payloads, and push-style
// sessions the driving loop feeds chunk by chunk.
package codec

import (
	"slices"
	"strings"

	"github.com/user538295/squish/core"
)

// Compile-time interface implementation check.
var _ core.Registry = (*Registry)(nil)

// Registry maps algorithm names to backends. Not safe for concurrent
// mutation; build it once at startup.
type Registry struct {
	byName map[string]core.Codec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]core.Codec)}
}

// Default creates a registry with all built-in backends registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(NewLZ4())
	r.Register(NewLZFSE())
	r.Register(NewZlib())
	r.Register(NewLZMA())
	return r
}

// Register adds c under its canonical name. A later registration for the
// same name replaces the earlier one.
func (r *Registry) Register(c core.Codec) {
	r.byName[strings.ToLower(c.Name())] = c
}

// Lookup returns the backend for name, matched case-insensitively.
func (r *Registry) Lookup(name string) (core.Codec, bool) {
	c, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// SupportedNames returns all registered names, sorted.
func (r *Registry) SupportedNames() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
