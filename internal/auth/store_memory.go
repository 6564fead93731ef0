// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package auth

import (
	"context"
	"sync"
)

// MemoryUserStore is the in-memory UserStore. All state lives for the
// process lifetime only. Records are stored by value so callers cannot
// mutate a stored user through a returned copy.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryUserStore creates a new in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]User),
	}
}

// Add inserts the user unless the username is taken. The check and insert
// happen under one write lock, so insertion is atomic to callers.
func (s *MemoryUserStore) Add(_ context.Context, user User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return false, nil
	}
	s.users[user.Username] = user
	return true, nil
}

// Get retrieves a user by username.
func (s *MemoryUserStore) Get(_ context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

// Exists reports whether a username is taken.
func (s *MemoryUserStore) Exists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[username]
	return ok, nil
}
