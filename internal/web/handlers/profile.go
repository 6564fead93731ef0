// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package handlers

import (
	"context"
	"errors"

	"github.com/hallpass/hallpass/internal/auth"
	"github.com/hallpass/hallpass/internal/web"
)

// ProfileHandler shows the logged-in user's details. An absent or
// unresolvable session cookie is a normal outcome, not an error.
func ProfileHandler(ctx context.Context, ex *web.Exchange) error {
	req, res := ex.Request, ex.Response

	username, err := ex.Services.Sessions.Resolve(ctx, req.SessionToken())
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			res.Write("Not logged in. <a href='/login'>Login</a>")
			return nil
		}
		return err
	}

	user, err := ex.Services.Users.Get(ctx, username)
	if err != nil {
		// A live session always references a registered user; a miss here
		// means the stores are inconsistent.
		return err
	}

	res.Write("<html><head><title>Profile</title></head><body>")
	res.Write("<h1>Profile</h1>")
	res.Write("Username: " + user.Username + "<br/>")
	res.Write("Display Name: " + user.DisplayName + "<br/>")
	res.Write("Email: " + user.Email + "<br/>")
	res.Write("<a href='/logout'>Logout</a>")
	res.Write("</body></html>")
	return nil
}
