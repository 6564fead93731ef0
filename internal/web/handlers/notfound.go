// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package handlers

import (
	"context"

	"github.com/hallpass/hallpass/internal/web"
)

// NotFoundHandler is the fallback for unregistered paths. Body only, no
// headers.
func NotFoundHandler(_ context.Context, ex *web.Exchange) error {
	ex.Response.Write("404 Not Found")
	return nil
}
