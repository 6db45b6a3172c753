// Package inflight keeps at most one mutation per key running at a time.
// A second Acquire on a held key fails immediately with ErrBusy instead of
// queueing, so a double-submitted request surfaces as a conflict.
package inflight

import (
	"context"
	"errors"
	"sync"
)

// ErrBusy is returned when the key is already held.
var ErrBusy = errors.New("mutation already in flight")

// Memory is a process-local guard.
type Memory struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemory creates an empty process-local guard.
func NewMemory() *Memory {
	return &Memory{held: make(map[string]struct{})}
}

// Acquire claims key until the returned func is called.
func (m *Memory) Acquire(_ context.Context, key string) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.held[key]; ok {
		return nil, ErrBusy
	}
	m.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.held, key)
			m.mu.Unlock()
		})
	}, nil
}

// Held reports whether key is currently claimed.
func (m *Memory) Held(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.held[key]
	return ok
}
