// Package cache provides the process-wide TTL cache shared by the tool
// adapters. Values are stored as serialized JSON so the same Store interface
// can be backed by memory or by a database table.
package cache

import (
	"sync"
	"time"
)

// Store is a key-value cache with per-key expiry and last-write-wins updates.
type Store interface {
	// Get returns the cached value for key, or false if absent or expired.
	Get(key string) ([]byte, bool)
	// Set stores value under key for ttl.
	Set(key string, value []byte, ttl time.Duration)
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Store safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get implements Store. Expired entries are dropped lazily.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

// Set implements Store.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
}

// Nop is a Store that caches nothing. Used in tests to keep adapters pure.
type Nop struct{}

// Get implements Store.
func (Nop) Get(string) ([]byte, bool) { return nil, false }

// Set implements Store.
func (Nop) Set(string, []byte, time.Duration) {}
