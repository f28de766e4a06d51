package common

import (
	"sync"
	"time"
)

// TTLMap is a process-local map whose entries expire after a fixed TTL.
// Reads of expired entries behave as misses and evict lazily.
type TTLMap struct {
	mu      sync.RWMutex
	entries map[string]ttlEntry
	ttl     time.Duration
}

type ttlEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewTTLMap(ttl time.Duration) *TTLMap {
	return &TTLMap{
		entries: make(map[string]ttlEntry),
		ttl:     ttl,
	}
}

func (m *TTLMap) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		m.Delete(key)
		return nil, false
	}
	return entry.value, true
}

func (m *TTLMap) Set(key string, value interface{}) {
	m.mu.Lock()
	m.entries[key] = ttlEntry{value: value, expiresAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()
}

func (m *TTLMap) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}
