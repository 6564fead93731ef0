// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

// Package auth provides the authentication core for Hallpass.
//
// # Domain Types
//
// User is the registered account record. It is created once at registration
// and never mutated afterwards; the store interfaces expose no update or
// delete operations.
//
// # Stores
//
// UserStore and SessionRegistry are the two pieces of process-wide state.
// The in-memory implementations guard their maps with mutexes so the
// single-writer guarantee of the console loop stays intact if a concurrent
// caller is ever introduced.
//
// # Services
//
// Service coordinates registration, login, and logout on top of the stores
// and a PasswordHasher. It is created with NewService, which validates its
// dependencies.
package auth
