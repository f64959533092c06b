// Copyright 2026 Codestyle CI. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages linter adapters keyed by name.
type Registry struct {
	mu      sync.RWMutex
	linters map[string]Linter
}

// NewRegistry creates a new linter registry.
func NewRegistry() *Registry {
	return &Registry{
		linters: make(map[string]Linter),
	}
}

// Register registers a linter adapter under its name. A later
// registration with the same name replaces the earlier one.
func (r *Registry) Register(l Linter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.linters[l.Name()] = l
}

// Get retrieves a linter by name.
func (r *Registry) Get(name string) (Linter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.linters[name]
	return l, ok
}

// MustGet returns a linter or panics.
func (r *Registry) MustGet(name string) Linter {
	l, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("linter not found: %s", name))
	}
	return l
}

// List returns all registered linter names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.linters))
	for name := range r.linters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global default registry.
var DefaultRegistry = NewRegistry()

// Register registers a linter in the default registry.
func Register(l Linter) {
	DefaultRegistry.Register(l)
}

// Get retrieves a linter from the default registry.
func Get(name string) (Linter, bool) {
	return DefaultRegistry.Get(name)
}

// List returns the names registered in the default registry.
func List() []string {
	return DefaultRegistry.List()
}
