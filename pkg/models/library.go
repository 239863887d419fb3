package models

import (
	"fmt"
	"sync"
)

// Library loads meshes once and returns the same instance on every call.
// Returned meshes are shared and must be treated as read-only.
// It is safe for concurrent use.
type Library struct {
	mu       sync.Mutex
	builtins map[Object]*Mesh
	files    map[string]*Mesh
	fit      float64
}

// NewLibrary creates an empty library. When fit is positive, meshes loaded
// from files are normalized so their largest dimension equals fit.
func NewLibrary(fit float64) *Library {
	return &Library{
		builtins: make(map[Object]*Mesh),
		files:    make(map[string]*Mesh),
		fit:      fit,
	}
}

// Get returns the built-in mesh for o.
func (l *Library) Get(o Object) (*Mesh, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.builtins[o]; ok {
		return m, nil
	}
	m, err := Builtin(o)
	if err != nil {
		return nil, err
	}
	l.builtins[o] = m
	return m, nil
}

// Custom returns the mesh stored at path. Failed loads are not cached, so a
// fixed file can be retried.
func (l *Library) Custom(path string) (*Mesh, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.files[path]; ok {
		return m, nil
	}
	m, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}
	if l.fit > 0 {
		m.Normalize(l.fit)
	}
	l.files[path] = m
	return m, nil
}
