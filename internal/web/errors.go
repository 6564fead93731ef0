// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package web

import (
	"github.com/samber/oops"
)

// Error codes for dispatch failures.
const (
	CodeHandlerFailed = "HANDLER_FAILED"
	CodeNilRoutes     = "NIL_ROUTES"
	CodeNilServices   = "NIL_SERVICES"
)

// ErrNilRoutes is returned when constructing a dispatcher without a route table.
var ErrNilRoutes = oops.Code(CodeNilRoutes).Errorf("route table is required")

// ErrNilServices is returned when constructing a dispatcher without services.
var ErrNilServices = oops.Code(CodeNilServices).Errorf("services are required")

// HandlerError wraps an infrastructure failure from a route handler.
// Validation failures never become errors; they are inline body text.
func HandlerError(path string, cause error) error {
	return oops.Code(CodeHandlerFailed).
		With("path", path).
		Wrap(cause)
}

// UserMessage extracts a safe user-facing message from a dispatch error.
// Internal details never reach the response body.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return "Something went wrong. Try again."
}
