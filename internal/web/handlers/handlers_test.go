// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package handlers_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallpass/hallpass/internal/auth"
	"github.com/hallpass/hallpass/internal/web"
	"github.com/hallpass/hallpass/internal/web/handlers"
)

// newSite builds the full route table and dispatcher over fresh stores, the
// same wiring the console command performs at startup.
func newSite(t *testing.T) (*web.Dispatcher, *web.Services) {
	t.Helper()

	users := auth.NewMemoryUserStore()
	sessions := auth.NewMemorySessionRegistry()
	svc, err := auth.NewService(users, sessions, auth.NewSHA256Hasher())
	require.NoError(t, err)

	services := &web.Services{Users: users, Sessions: sessions, Auth: svc}

	routes := web.NewRouteTable()
	handlers.RegisterAll(routes)

	d, err := web.NewDispatcher(routes, services, web.WithNotFound(handlers.NotFoundHandler))
	require.NoError(t, err)
	return d, services
}

func dispatch(t *testing.T, d *web.Dispatcher, path string, params, cookies map[string]string) *web.Response {
	t.Helper()
	res, err := d.Dispatch(context.Background(), web.NewRequest(path, params, cookies))
	require.NoError(t, err)
	return res
}

// registerAlice creates the canonical test account.
func registerAlice(t *testing.T, d *web.Dispatcher) {
	t.Helper()
	res := dispatch(t, d, "/register", map[string]string{
		"submit":      "1",
		"username":    "alice",
		"password":    "pw123",
		"email":       "a@x.com",
		"displayName": "Alice A",
	}, nil)
	require.Contains(t, res.Body(), "Registration successful!")
}

// loginAlice logs in and returns the session token from the cookie header.
func loginAlice(t *testing.T, d *web.Dispatcher) string {
	t.Helper()
	res := dispatch(t, d, "/login", map[string]string{
		"submit":   "1",
		"username": "alice",
		"password": "pw123",
	}, nil)
	require.Contains(t, res.Body(), "Login successful!")

	cookie := res.Headers()["Set-Cookie"]
	require.True(t, strings.HasPrefix(cookie, "session="))
	return strings.TrimPrefix(cookie, "session=")
}

func TestHomeHandler(t *testing.T) {
	d, _ := newSite(t)

	res := dispatch(t, d, "/", nil, nil)
	assert.Contains(t, res.Body(), "Welcome to My Website!")
	assert.Contains(t, res.Body(), "<a href='/register'>Register</a>")
	assert.Contains(t, res.Body(), "<a href='/login'>Login</a>")
	assert.Empty(t, res.Headers())
}

func TestRegisterHandler(t *testing.T) {
	t.Run("no submit renders the form", func(t *testing.T) {
		d, _ := newSite(t)

		res := dispatch(t, d, "/register", nil, nil)
		assert.Contains(t, res.Body(), "<form method='POST' action='/register'>")
		assert.Contains(t, res.Body(), "name='displayName'")
	})

	t.Run("missing fields", func(t *testing.T) {
		d, services := newSite(t)

		res := dispatch(t, d, "/register", map[string]string{
			"submit":   "1",
			"username": "alice",
			"password": "pw123",
			// email and displayName absent
		}, nil)
		assert.Equal(t, "All fields are required.", res.Body())

		exists, err := services.Users.Exists(context.Background(), "alice")
		require.NoError(t, err)
		assert.False(t, exists, "failed registration must not change state")
	})

	t.Run("successful registration", func(t *testing.T) {
		d, services := newSite(t)

		registerAlice(t, d)

		user, err := services.Users.Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice A", user.DisplayName)
		assert.Equal(t, "a@x.com", user.Email)
		assert.NotEqual(t, "pw123", user.PasswordDigest)
	})

	t.Run("duplicate username", func(t *testing.T) {
		d, services := newSite(t)
		registerAlice(t, d)

		res := dispatch(t, d, "/register", map[string]string{
			"submit":      "1",
			"username":    "alice",
			"password":    "anything",
			"email":       "other@x.com",
			"displayName": "Mallory",
		}, nil)
		assert.Equal(t, "Username already exists.", res.Body())

		user, err := services.Users.Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice A", user.DisplayName, "first registration must win")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("no submit renders the form", func(t *testing.T) {
		d, _ := newSite(t)

		res := dispatch(t, d, "/login", nil, nil)
		assert.Contains(t, res.Body(), "<form method='POST' action='/login'>")
	})

	t.Run("correct credentials set a resolvable session cookie", func(t *testing.T) {
		d, services := newSite(t)
		registerAlice(t, d)

		token := loginAlice(t, d)

		username, err := services.Sessions.Resolve(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		d, _ := newSite(t)
		registerAlice(t, d)

		wrongPw := dispatch(t, d, "/login", map[string]string{
			"submit": "1", "username": "alice", "password": "wrongpw",
		}, nil)
		unknown := dispatch(t, d, "/login", map[string]string{
			"submit": "1", "username": "nobody", "password": "pw123",
		}, nil)

		assert.Equal(t, "Invalid username or password.", wrongPw.Body())
		assert.Equal(t, wrongPw.Body(), unknown.Body())
		assert.Empty(t, wrongPw.Headers(), "no cookie on failure")
	})
}

func TestProfileHandler(t *testing.T) {
	t.Run("valid session shows the profile", func(t *testing.T) {
		d, _ := newSite(t)
		registerAlice(t, d)
		token := loginAlice(t, d)

		res := dispatch(t, d, "/profile", nil, map[string]string{"session": token})
		assert.Contains(t, res.Body(), "Username: alice<br/>")
		assert.Contains(t, res.Body(), "Display Name: Alice A<br/>")
		assert.Contains(t, res.Body(), "Email: a@x.com<br/>")
		assert.Contains(t, res.Body(), "<a href='/logout'>Logout</a>")
	})

	t.Run("no cookie", func(t *testing.T) {
		d, _ := newSite(t)

		res := dispatch(t, d, "/profile", nil, nil)
		assert.Equal(t, "Not logged in. <a href='/login'>Login</a>", res.Body())
	})

	t.Run("stale token", func(t *testing.T) {
		d, _ := newSite(t)

		res := dispatch(t, d, "/profile", nil, map[string]string{"session": "never-issued"})
		assert.Equal(t, "Not logged in. <a href='/login'>Login</a>", res.Body())
	})
}

func TestLogoutHandler(t *testing.T) {
	t.Run("invalidates the session and clears the cookie", func(t *testing.T) {
		d, services := newSite(t)
		registerAlice(t, d)
		token := loginAlice(t, d)

		res := dispatch(t, d, "/logout", nil, map[string]string{"session": token})
		assert.Equal(t, "Logged out. <a href='/'>Go to Home</a>", res.Body())
		assert.Equal(t, "session=; Max-Age=0", res.Headers()["Set-Cookie"])

		_, err := services.Sessions.Resolve(context.Background(), token)
		require.ErrorIs(t, err, auth.ErrNotFound)
	})

	t.Run("logout without a session still confirms", func(t *testing.T) {
		d, _ := newSite(t)

		res := dispatch(t, d, "/logout", nil, nil)
		assert.Equal(t, "Logged out. <a href='/'>Go to Home</a>", res.Body())
		assert.Equal(t, "session=; Max-Age=0", res.Headers()["Set-Cookie"])
	})
}

func TestPlaceholderRoutes(t *testing.T) {
	d, _ := newSite(t)

	assert.Equal(t, "Dummy page 1. Nothing to see here.<br/>", dispatch(t, d, "/dummy1", nil, nil).Body())
	assert.Equal(t, "Dummy page 2. Still nothing here.<br/>", dispatch(t, d, "/dummy2", nil, nil).Body())
	assert.Equal(t, "Dummy page 3. You're persistent!<br/>", dispatch(t, d, "/dummy3", nil, nil).Body())
}

func TestNotFoundFallback(t *testing.T) {
	d, _ := newSite(t)

	res := dispatch(t, d, "/unknown-path", nil, nil)
	assert.Equal(t, "404 Not Found", res.Body())
	assert.Empty(t, res.Headers())
}
