// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package auth

import (
	"context"

	"github.com/samber/oops"
)

// ErrNotFound is returned by stores when a record does not exist. Lookup
// misses are a normal outcome, not a failure; callers check with errors.Is.
var ErrNotFound = oops.Code("AUTH_NOT_FOUND").Errorf("record not found")

// User represents a registered account. The password digest is derived via a
// PasswordHasher; the plaintext is never stored. Records are immutable once
// added to a store.
type User struct {
	Username       string
	PasswordDigest string
	Email          string
	DisplayName    string
}

// UserStore manages user persistence. Usernames are unique: a store never
// holds two records with the same username.
type UserStore interface {
	// Add inserts the user if the username is free. Returns false and leaves
	// the store untouched if the username is already taken.
	Add(ctx context.Context, user User) (bool, error)

	// Get retrieves a user by username. Returns ErrNotFound on miss.
	Get(ctx context.Context, username string) (User, error)

	// Exists reports whether a username is taken.
	Exists(ctx context.Context, username string) (bool, error)
}
