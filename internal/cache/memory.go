package cache

import (
	"context"
	"sync"
	"time"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
)

type memoryEntry struct {
	res      *aigen.GenerationResult
	storedAt time.Time
}

// Memory is a mutex-guarded map with lazy expiry: an entry older than the
// TTL is treated as absent and evicted by the lookup that touches it. Used
// when no Redis address is configured, and in tests.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (*aigen.GenerationResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.storedAt) > m.ttl {
		delete(m.entries, key)
		return nil, false
	}
	return e.res, true
}

func (m *Memory) Put(_ context.Context, key string, res *aigen.GenerationResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{res: res, storedAt: m.now()}
}
