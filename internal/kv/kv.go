// Package kv provides the small key-value storage surface the local adapter
// persists into: GetItem and SetItem over a fixed set of string keys, one
// per entity type. The semantics mirror a browser's localStorage area.
package kv

import "sync"

// Store is the full contract the local adapter needs. A missing key is
// reported via the boolean, not an error.
type Store interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Memory is an in-process Store used for tests and throwaway sessions.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

func (m *Memory) GetItem(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}
