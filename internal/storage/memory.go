package storage

import (
	"context"
	"sync"

	"budgetbook/internal/core"
)

// MemorySessionStore keeps the session in process memory. Used when no
// database path is configured and in tests.
type MemorySessionStore struct {
	mu   sync.Mutex
	user core.User
	ok   bool
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Save(_ context.Context, u core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.ok = true
	return nil
}

func (s *MemorySessionStore) Load(_ context.Context) (core.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.ok, nil
}

func (s *MemorySessionStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = core.User{}
	s.ok = false
	return nil
}
