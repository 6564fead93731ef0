// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

// Package console implements the interactive read loop that stands in for
// HTTP request/response cycles. It collects a path, simulated POST fields,
// and a session cookie from the terminal, feeds them to the dispatcher, and
// prints the resulting headers and body.
//
// The loop is presentation only: the contract between it and the core is the
// path string, the parameter map, and the cookie map on the way in, and the
// body plus header map on the way out.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/samber/oops"

	"github.com/hallpass/hallpass/internal/web"
	"github.com/hallpass/hallpass/pkg/errutil"
)

const responseSeparator = "------- End Response -------"

// Loop drives the simulated request cycle over a reader/writer pair.
type Loop struct {
	scanner    *bufio.Scanner
	out        io.Writer
	dispatcher *web.Dispatcher
	logger     *slog.Logger
}

// New creates a console loop. Returns an error on nil dependencies.
func New(in io.Reader, out io.Writer, dispatcher *web.Dispatcher, logger *slog.Logger) (*Loop, error) {
	if in == nil || out == nil {
		return nil, oops.Code("CONSOLE_NIL_DEPENDENCY").Errorf("input and output streams are required")
	}
	if dispatcher == nil {
		return nil, oops.Code("CONSOLE_NIL_DEPENDENCY").Errorf("dispatcher is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		scanner:    bufio.NewScanner(in),
		out:        out,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// Run processes requests until EOF, "exit", or context cancellation.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, "Simple WebsiteApp. Type your path ('/', '/register', etc). Type 'exit' to quit.")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		path, ok := l.prompt("Path: ")
		if !ok || path == "exit" {
			return nil
		}

		req := web.NewRequest(path, nil, nil)
		l.collectParams(req)
		l.collectCookies(req)

		res, err := l.dispatcher.Dispatch(ctx, req)
		if err != nil {
			errutil.LogError(l.logger, "dispatch failed", err)
			fmt.Fprintln(l.out, web.UserMessage(err))
			fmt.Fprintln(l.out, responseSeparator)
			continue
		}

		l.render(res)
	}
}

// collectParams simulates POST data for the form routes.
func (l *Loop) collectParams(req *web.Request) {
	if req.Path != "/register" && req.Path != "/login" {
		return
	}

	answer, ok := l.prompt("Is this a POST? (y/n): ")
	if !ok || !strings.EqualFold(answer, "y") {
		return
	}

	if v, ok := l.prompt("username: "); ok {
		req.Params["username"] = v
	}
	if v, ok := l.prompt("password: "); ok {
		req.Params["password"] = v
	}
	if req.Path == "/register" {
		if v, ok := l.prompt("email: "); ok {
			req.Params["email"] = v
		}
		if v, ok := l.prompt("displayName: "); ok {
			req.Params["displayName"] = v
		}
	}
	req.Params[web.ParamSubmit] = "1"
}

// collectCookies simulates the session cookie for the authenticated routes.
func (l *Loop) collectCookies(req *web.Request) {
	if req.Path != "/profile" && req.Path != "/logout" {
		return
	}

	token, ok := l.prompt("sessionId (if any): ")
	if ok && token != "" {
		req.Cookies[web.CookieSession] = token
	}
}

// render prints headers, body, and the separator.
func (l *Loop) render(res *web.Response) {
	headers := res.Headers()
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(l.out, "Header: %s: %s\n", k, headers[k])
	}

	fmt.Fprintln(l.out, res.Body())
	fmt.Fprintln(l.out, responseSeparator)
}

// prompt writes the prompt and reads one line. ok is false at EOF.
func (l *Loop) prompt(label string) (string, bool) {
	fmt.Fprint(l.out, label)
	if !l.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(l.scanner.Text()), true
}
