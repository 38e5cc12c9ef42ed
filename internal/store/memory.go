package store

import (
	"container/list"
	"context"
	"sync"
)

// Memory is a bounded in-memory key-value store with least-recently-used
// eviction. It is safe for concurrent use.
//
// It started as the geocoder's result LRU. Values are now opaque strings so
// the cache layer owns encoding, Get and Set take a context to match the
// sqlite store, the recency list is a container/list, and capacity is at
// least one.
type Memory struct {
	maxEntries int

	mu      sync.Mutex
	order   *list.List // front is most recently used
	entries map[string]*list.Element
}

type memoryEntry struct {
	key   string
	value string
}

// NewMemory creates a store holding at most maxEntries values.
func NewMemory(maxEntries int) *Memory {
	return &Memory{
		maxEntries: max(maxEntries, 1),
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

// Get returns the value for key and marks it most recently used.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	m.order.MoveToFront(el)
	return el.Value.(*memoryEntry).value, true, nil
}

// Set stores value under key, evicting the least recently used entry when full.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[key]; ok {
		el.Value.(*memoryEntry).value = value
		m.order.MoveToFront(el)
		return nil
	}

	m.entries[key] = m.order.PushFront(&memoryEntry{key: key, value: value})
	for m.order.Len() > m.maxEntries {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*memoryEntry).key)
	}
	return nil
}

// Len reports the number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// CheckReadiness always succeeds; the store lives in process memory.
func (m *Memory) CheckReadiness(_ context.Context) error { return nil }
