// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package handlers

import (
	"context"
	"errors"

	"github.com/hallpass/hallpass/internal/auth"
	"github.com/hallpass/hallpass/internal/web"
)

// LoginHandler serves the login form and processes submissions. Unknown
// usernames and wrong passwords produce identical body text.
func LoginHandler(ctx context.Context, ex *web.Exchange) error {
	req, res := ex.Request, ex.Response

	if !req.IsSubmit() {
		res.Write("<form method='POST' action='/login'>")
		res.Write("Username: <input name='username'/><br/>")
		res.Write("Password: <input type='password' name='password'/><br/>")
		res.Write("<input type='hidden' name='submit' value='1'/>")
		res.Write("<button type='submit'>Login</button>")
		res.Write("</form>")
		return nil
	}

	token, err := ex.Services.Auth.Login(ctx, req.Params["username"], req.Params["password"])
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			res.Write("Invalid username or password.")
			return nil
		}
		return err
	}

	res.SetHeader("Set-Cookie", web.CookieSession+"="+token)
	res.Write("Login successful! <a href='/profile'>Go to Profile</a>")
	return nil
}
