package session

import (
	"context"
	"sync"
	"time"

	"github.com/givehope/backend/internal/domain/cart"
)

type cartEntry struct {
	cart      cart.Cart
	expiresAt time.Time
}

// InMemoryCartStore implements cart.SessionStore using an in-memory map.
// This is suitable for single-instance deployments and testing.
type InMemoryCartStore struct {
	mu      sync.RWMutex
	entries map[string]cartEntry
	ttl     time.Duration
}

// NewInMemoryCartStore creates a new in-memory guest cart store
func NewInMemoryCartStore(ttl time.Duration) *InMemoryCartStore {
	return &InMemoryCartStore{
		entries: make(map[string]cartEntry),
		ttl:     ttl,
	}
}

// Get returns the guest cart for a session id; missing or expired entries
// read as an empty cart
func (s *InMemoryCartStore) Get(_ context.Context, sessionID string) (cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[sessionID]
	if !exists || time.Now().After(e.expiresAt) {
		return cart.Cart{}, nil
	}
	return e.cart.Clone(), nil
}

// Put replaces the guest cart, refreshing the session TTL
func (s *InMemoryCartStore) Put(_ context.Context, sessionID string, c cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = cartEntry{
		cart:      c.Clone(),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Clear removes the guest cart
func (s *InMemoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Ensure InMemoryCartStore implements cart.SessionStore
var _ cart.SessionStore = (*InMemoryCartStore)(nil)
