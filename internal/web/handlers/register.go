// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package handlers

import (
	"context"
	"errors"

	"github.com/hallpass/hallpass/internal/auth"
	"github.com/hallpass/hallpass/internal/web"
)

// RegisterHandler serves the registration form and processes submissions.
// Validation failures are inline body text, never errors; only a hasher or
// store failure propagates.
func RegisterHandler(ctx context.Context, ex *web.Exchange) error {
	req, res := ex.Request, ex.Response

	if !req.IsSubmit() {
		res.Write("<form method='POST' action='/register'>")
		res.Write("Username: <input name='username'/><br/>")
		res.Write("Password: <input type='password' name='password'/><br/>")
		res.Write("Email: <input name='email'/><br/>")
		res.Write("Display Name: <input name='displayName'/><br/>")
		res.Write("<input type='hidden' name='submit' value='1'/>")
		res.Write("<button type='submit'>Register</button>")
		res.Write("</form>")
		return nil
	}

	username, hasUsername := req.Params["username"]
	password, hasPassword := req.Params["password"]
	email, hasEmail := req.Params["email"]
	displayName, hasDisplayName := req.Params["displayName"]
	if !hasUsername || !hasPassword || !hasEmail || !hasDisplayName {
		res.Write("All fields are required.")
		return nil
	}

	_, err := ex.Services.Auth.Register(ctx, username, password, email, displayName)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUsername) {
			res.Write("Username already exists.")
			return nil
		}
		return err
	}

	res.Write("Registration successful! <a href='/login'>Login here</a>")
	return nil
}
