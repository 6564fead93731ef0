// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package handlers

import (
	"context"

	"github.com/hallpass/hallpass/internal/web"
)

// Placeholder returns an inert handler that emits fixed text. The site keeps
// a few of these routes around as filler pages.
func Placeholder(text string) web.RouteHandler {
	return func(_ context.Context, ex *web.Exchange) error {
		ex.Response.Write(text)
		return nil
	}
}
