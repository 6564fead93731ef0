// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package handlers

import (
	"github.com/hallpass/hallpass/internal/web"
)

// RegisterAll registers every core route with the table. The route set is
// static for the process lifetime; nothing registers routes after startup.
// Panics if any registration fails (indicates a programming error).
func RegisterAll(routes *web.RouteTable) {
	mustRegister := func(entry web.RouteEntry) {
		if err := routes.Register(entry); err != nil {
			panic("failed to register core route " + entry.Path + ": " + err.Error())
		}
	}

	mustRegister(web.RouteEntry{
		Path:    "/",
		Handler: HomeHandler,
		Help:    "Welcome page with registration and login links",
		Source:  "core",
	})

	mustRegister(web.RouteEntry{
		Path:    "/register",
		Handler: RegisterHandler,
		Help:    "Registration form and account creation",
		Source:  "core",
	})

	mustRegister(web.RouteEntry{
		Path:    "/login",
		Handler: LoginHandler,
		Help:    "Login form and session issuance",
		Source:  "core",
	})

	mustRegister(web.RouteEntry{
		Path:    "/profile",
		Handler: ProfileHandler,
		Help:    "Profile page for the logged-in user",
		Source:  "core",
	})

	mustRegister(web.RouteEntry{
		Path:    "/logout",
		Handler: LogoutHandler,
		Help:    "Session invalidation and cookie clearing",
		Source:  "core",
	})

	// Filler pages carried over from the original site.
	mustRegister(web.RouteEntry{
		Path:    "/dummy1",
		Handler: Placeholder("Dummy page 1. Nothing to see here.<br/>"),
		Help:    "Placeholder page",
		Source:  "placeholder",
	})

	mustRegister(web.RouteEntry{
		Path:    "/dummy2",
		Handler: Placeholder("Dummy page 2. Still nothing here.<br/>"),
		Help:    "Placeholder page",
		Source:  "placeholder",
	})

	mustRegister(web.RouteEntry{
		Path:    "/dummy3",
		Handler: Placeholder("Dummy page 3. You're persistent!<br/>"),
		Help:    "Placeholder page",
		Source:  "placeholder",
	})
}
