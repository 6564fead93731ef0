// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package handlers

import (
	"context"

	"github.com/hallpass/hallpass/internal/web"
)

// LogoutHandler invalidates the session (a no-op for absent or unknown
// tokens), clears the cookie, and confirms.
func LogoutHandler(ctx context.Context, ex *web.Exchange) error {
	req, res := ex.Request, ex.Response

	if err := ex.Services.Auth.Logout(ctx, req.SessionToken()); err != nil {
		return err
	}

	res.SetHeader("Set-Cookie", web.CookieSession+"=; Max-Age=0")
	res.Write("Logged out. <a href='/'>Go to Home</a>")
	return nil
}
