// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/samber/oops"
)

// SessionTokenBytes is the token entropy: 32 bytes = 64 hex chars. The token
// space is large enough that accidental reuse within a process lifetime is
// not a practical concern.
const SessionTokenBytes = 32

// GenerateSessionToken creates a secure random opaque token.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", oops.Code("SESSION_TOKEN_GENERATE_FAILED").
			With("operation", "crypto/rand.Read").
			With("requested_bytes", SessionTokenBytes).
			Wrap(err)
	}
	return hex.EncodeToString(buf), nil
}

// SessionRegistry maps live session tokens to usernames. Sessions do not
// expire; they live until Invalidate or process exit.
type SessionRegistry interface {
	// Create issues a token for the username and records the mapping.
	// The token is unique among currently live tokens.
	Create(ctx context.Context, username string) (string, error)

	// Resolve returns the username a token maps to. Returns ErrNotFound if
	// the token is absent or has been invalidated.
	Resolve(ctx context.Context, token string) (string, error)

	// Invalidate removes the mapping. Invalidating an absent or already
	// invalidated token is a no-op, not an error.
	Invalidate(ctx context.Context, token string) error
}

// MemorySessionRegistry is the in-memory SessionRegistry.
type MemorySessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]string // token -> username
}

// NewMemorySessionRegistry creates a new in-memory session registry.
func NewMemorySessionRegistry() *MemorySessionRegistry {
	return &MemorySessionRegistry{
		sessions: make(map[string]string),
	}
}

// Create issues a fresh token mapped to the username.
func (r *MemorySessionRegistry) Create(_ context.Context, username string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		token, err := GenerateSessionToken()
		if err != nil {
			return "", err
		}
		// Live tokens must be unique; retry on collision.
		if _, taken := r.sessions[token]; taken {
			continue
		}
		r.sessions[token] = username
		return token, nil
	}
}

// Resolve returns the username for a live token.
func (r *MemorySessionRegistry) Resolve(_ context.Context, token string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	username, ok := r.sessions[token]
	if !ok {
		return "", ErrNotFound
	}
	return username, nil
}

// Invalidate removes the token's mapping if present.
func (r *MemorySessionRegistry) Invalidate(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}
