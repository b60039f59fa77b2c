package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a map with TTL eviction. It is the
// default store when no Redis address is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

// NewMemoryStore creates a memory store evicting sessions ttl after their
// last update. A zero ttl disables expiry.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	if cleanupInterval == 0 {
		cleanupInterval = time.Minute
	}

	store := &MemoryStore{
		entries:  make(map[string]memoryEntry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	if ttl > 0 {
		go store.evictLoop(cleanupInterval)
	}
	return store
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok || m.expired(entry) {
		return nil, ErrNotFound
	}

	// Callers mutate sessions freely, hand out a copy.
	copied := *entry.session
	copied.History = append([]Exchange(nil), entry.session.History...)
	return &copied, nil
}

func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	copied := *s
	copied.History = append([]Exchange(nil), s.History...)

	var expiresAt time.Time
	if m.ttl > 0 {
		expiresAt = time.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[s.ID] = memoryEntry{session: &copied, expiresAt: expiresAt}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, entry := range m.entries {
		if !m.expired(entry) {
			n++
		}
	}
	return n, nil
}

// Close stops the eviction loop. The store remains usable afterwards but
// no longer evicts.
func (m *MemoryStore) Close() error {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
	return nil
}

func (m *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)
}

func (m *MemoryStore) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictExpired()
		case <-m.stopChan:
			return
		}
	}
}

func (m *MemoryStore) evictExpired() {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, entry := range m.entries {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			delete(m.entries, id)
		}
	}
}
