// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

// Package handlers implements the route handlers for the simulated site.
package handlers

import (
	"context"

	"github.com/hallpass/hallpass/internal/web"
)

// HomeHandler emits the static welcome page.
func HomeHandler(_ context.Context, ex *web.Exchange) error {
	res := ex.Response
	res.Write("<html><head><title>Home</title></head><body>")
	res.Write("<h1>Welcome to My Website!</h1>")
	res.Write("<a href='/register'>Register</a> | <a href='/login'>Login</a>")
	res.Write("</body></html>")
	return nil
}
