// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package auth

import (
	"context"
	"errors"

	"github.com/samber/oops"
)

// Sentinel errors for the expected validation outcomes. Callers distinguish
// these with errors.Is and render them as inline text; anything else is an
// infrastructure failure that propagates.
var (
	// ErrInvalidCredentials covers both unknown username and wrong password.
	// One error for both cases so the response cannot reveal which field was
	// wrong.
	ErrInvalidCredentials = oops.Code("AUTH_INVALID_CREDENTIALS").Errorf("invalid username or password")

	// ErrDuplicateUsername is returned when registering a taken username.
	ErrDuplicateUsername = oops.Code("AUTH_DUPLICATE_USERNAME").Errorf("username already exists")
)

// dummyDigest is verified against when a user doesn't exist, so lookup misses
// and password mismatches take the same code path and comparable time.
// This is NOT a real credential - it's a fake digest that will never match any password.
//
//nolint:gosec // G101: intentionally fake digest for enumeration resistance, not a credential.
const dummyDigest = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Service provides registration, login, and logout.
type Service struct {
	users    UserStore
	sessions SessionRegistry
	hasher   PasswordHasher
}

// NewService creates a new Service. Returns an error on nil dependencies.
func NewService(users UserStore, sessions SessionRegistry, hasher PasswordHasher) (*Service, error) {
	if users == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("user store is required")
	}
	if sessions == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("session registry is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("password hasher is required")
	}
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}, nil
}

// Register hashes the password and adds the user. Returns
// ErrDuplicateUsername if the username is taken; the store is untouched in
// that case.
func (s *Service) Register(ctx context.Context, username, password, email, displayName string) (User, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, oops.Code("AUTH_HASH_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	user := User{
		Username:       username,
		PasswordDigest: digest,
		Email:          email,
		DisplayName:    displayName,
	}

	added, err := s.users.Add(ctx, user)
	if err != nil {
		return User{}, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "add user").
			Wrap(err)
	}
	if !added {
		return User{}, ErrDuplicateUsername
	}

	return user, nil
}

// Login authenticates a user and creates a session, returning the token.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, lookupErr := s.users.Get(ctx, username)

	// Verify against a dummy digest when the user is unknown so both failure
	// modes do comparable work.
	targetDigest := dummyDigest
	userExists := false

	if lookupErr != nil {
		if !errors.Is(lookupErr, ErrNotFound) {
			return "", oops.Code("AUTH_LOGIN_FAILED").
				With("operation", "get user by username").
				Wrap(lookupErr)
		}
	} else {
		targetDigest = user.PasswordDigest
		userExists = true
	}

	valid, verifyErr := s.hasher.Verify(password, targetDigest)
	if verifyErr != nil {
		// The dummy digest may not parse under every hasher; treat that as a
		// plain mismatch.
		if !userExists {
			return "", ErrInvalidCredentials
		}
		return "", oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(verifyErr)
	}

	if !userExists || !valid {
		return "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, username)
	if err != nil {
		return "", oops.Code("AUTH_SESSION_CREATE_FAILED").
			With("operation", "create session").
			Wrap(err)
	}

	return token, nil
}

// Logout invalidates a session token. Absent or already invalid tokens are a
// no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Invalidate(ctx, token); err != nil {
		return oops.Code("AUTH_LOGOUT_FAILED").
			With("operation", "invalidate session").
			Wrap(err)
	}
	return nil
}
