package store

import (
	"context"
	"sync"
	"time"

	"github.com/shortloop/shortloop/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
type MemoryStore struct {
	mu    sync.RWMutex
	links map[shortener.Code]*shortener.Link
}

// NewMemoryStore creates a new in-memory link store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links: make(map[shortener.Code]*shortener.Link),
	}
}

func (m *MemoryStore) Save(_ context.Context, link *shortener.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[link.Code]; exists {
		return shortener.ErrConflict
	}

	m.links[link.Code] = cloneLink(link)

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.links[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return cloneLink(link), nil
}

func (m *MemoryStore) IncrementClicks(_ context.Context, code shortener.Code) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[code]
	if !ok {
		return shortener.ErrNotFound
	}

	link.Clicks++

	return nil
}

func (m *MemoryStore) Delete(_ context.Context, code shortener.Code) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.links, code)

	return nil
}

func (m *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64

	for code, link := range m.links {
		if link.ExpiresAt != nil && !link.ExpiresAt.After(now) {
			delete(m.links, code)
			removed++
		}
	}

	return removed, nil
}

// cloneLink copies a link including its expiry pointer, so neither side can
// mutate the other's state.
func cloneLink(link *shortener.Link) *shortener.Link {
	copied := *link

	if link.ExpiresAt != nil {
		expiresAt := *link.ExpiresAt
		copied.ExpiresAt = &expiresAt
	}

	return &copied
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
