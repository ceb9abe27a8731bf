package module

import (
	"slices"
	"sync"
)

// Registry records mounted modules by name
type Registry struct {
	mu   sync.RWMutex
	mods map[string]Module
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{mods: map[string]Module{}} }

// Add records m, a later module with the same name replaces the earlier one
func (r *Registry) Add(m Module) {
	r.mu.Lock()
	r.mods[m.Name()] = m
	r.mu.Unlock()
}

// Lookup returns the ports of the named module asserted to T
func Lookup[T any](r *Registry, name string) (T, bool) {
	r.mu.RLock()
	m, ok := r.mods[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return PortsOf[T](m)
}

// Names lists the recorded module names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.mods))
	for n := range r.mods {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
