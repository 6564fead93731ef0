// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

// Package web provides the route table, dispatcher, and request/response
// types for the simulated web surface.
package web

import (
	"context"
	"strings"

	"github.com/hallpass/hallpass/internal/auth"
)

// Well-known parameter and cookie keys of the harness contract.
const (
	// ParamSubmit marks a request as a form submission. Path routing does
	// not distinguish GET from POST; presence of this key does.
	ParamSubmit = "submit"

	// CookieSession carries the session token.
	CookieSession = "session"
)

// Request is the handler-scoped view of one incoming request: an exact-match
// path plus the parameter and cookie maps supplied by the harness.
type Request struct {
	Path    string
	Params  map[string]string
	Cookies map[string]string
}

// NewRequest creates a Request with non-nil maps.
func NewRequest(path string, params, cookies map[string]string) *Request {
	if params == nil {
		params = make(map[string]string)
	}
	if cookies == nil {
		cookies = make(map[string]string)
	}
	return &Request{Path: path, Params: params, Cookies: cookies}
}

// IsSubmit reports whether the request carries the submission marker.
func (r *Request) IsSubmit() bool {
	_, ok := r.Params[ParamSubmit]
	return ok
}

// SessionToken returns the session cookie value, or "" if absent.
func (r *Request) SessionToken() string {
	return r.Cookies[CookieSession]
}

// Response accumulates the handler's output: an append-only body and a
// header map where the last write to a key wins.
type Response struct {
	body    strings.Builder
	headers map[string]string
}

// NewResponse creates an empty Response.
func NewResponse() *Response {
	return &Response{headers: make(map[string]string)}
}

// Write appends text to the body.
func (r *Response) Write(s string) {
	r.body.WriteString(s)
}

// SetHeader sets a header value, replacing any previous value for the key.
func (r *Response) SetHeader(key, value string) {
	r.headers[key] = value
}

// Body returns the accumulated body text.
func (r *Response) Body() string {
	return r.body.String()
}

// Headers returns a copy of the header map.
func (r *Response) Headers() map[string]string {
	out := make(map[string]string, len(r.headers))
	for k, v := range r.headers {
		out[k] = v
	}
	return out
}

// Services provides access to the shared stores for route handlers.
// Handlers MUST NOT retain references to services beyond one exchange.
type Services struct {
	Users    auth.UserStore
	Sessions auth.SessionRegistry
	Auth     *auth.Service
}

// Exchange is the execution context for one dispatched request.
type Exchange struct {
	Request  *Request
	Response *Response
	Services *Services
}

// RouteHandler is the function signature for route handlers. Validation
// failures are written to the response body; only infrastructure failures
// are returned as errors.
type RouteHandler func(ctx context.Context, ex *Exchange) error

// RouteEntry represents a registered route.
type RouteEntry struct {
	Path    string       // exact-match path (e.g. "/login")
	Handler RouteHandler // behavior bound to the path
	Help    string       // short description (one line)
	Source  string       // "core" or "placeholder"
}
