// memory.go provides the in-process render cache (L1). Rendered previews are
// keyed by the digest of their source text, so flipping back and forth
// between recent revisions of the document skips the whole pipeline. A
// bounded FIFO keeps memory flat under a stream of distinct revisions.
package cache

import (
	"log/slog"
	"sync"
)

// DefaultMemoryEntries is the L1 capacity when none is configured.
const DefaultMemoryEntries = 256

// Memory is a concurrency-safe bounded cache of rendered HTML. When full, the
// oldest inserted entry is evicted first.
type Memory struct {
	mu       sync.Mutex
	capacity int
	entries  map[string][]byte
	order    []string
}

// NewMemory creates an empty cache holding at most capacity entries.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultMemoryEntries
	}
	return &Memory{
		capacity: capacity,
		entries:  make(map[string][]byte, capacity),
	}
}

// Get retrieves cached HTML. The returned slice is a copy.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	html, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), html...), true
}

// Set stores rendered HTML, evicting the oldest entries once the cache is
// full. Re-setting an existing key replaces its value without touching the
// eviction order.
func (m *Memory) Set(key string, html []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		m.entries[key] = append([]byte(nil), html...)
		return
	}

	for len(m.entries) >= m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
		slog.Debug("memory cache evicted", "key", oldest)
	}

	m.entries[key] = append([]byte(nil), html...)
	m.order = append(m.order, key)
}

// Len reports the number of cached entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
