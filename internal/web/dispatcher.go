// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package web

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hallpass/web")

// metricPathUnknown keeps metric cardinality bounded: arbitrary unregistered
// paths all land on one label.
const metricPathUnknown = "unknown"

// Dispatcher resolves paths to handlers and executes them.
type Dispatcher struct {
	routes   *RouteTable
	services *Services
	notFound RouteHandler
}

// DispatcherOption configures a Dispatcher during construction.
type DispatcherOption func(*Dispatcher)

// WithNotFound overrides the fallback handler invoked for unregistered paths.
func WithNotFound(h RouteHandler) DispatcherOption {
	return func(d *Dispatcher) {
		d.notFound = h
	}
}

// NewDispatcher creates a dispatcher over the given route table and services.
// Returns an error if routes or services is nil.
func NewDispatcher(routes *RouteTable, services *Services, opts ...DispatcherOption) (*Dispatcher, error) {
	if routes == nil {
		return nil, ErrNilRoutes
	}
	if services == nil {
		return nil, ErrNilServices
	}
	d := &Dispatcher{
		routes:   routes,
		services: services,
		notFound: defaultNotFound,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// defaultNotFound emits the not-found body with no headers.
func defaultNotFound(_ context.Context, ex *Exchange) error {
	ex.Response.Write("404 Not Found")
	return nil
}

// Dispatch resolves the request path and runs the bound handler, producing a
// response. An unregistered path is routed to the not-found handler, never an
// error. A returned error means the handler itself failed; the partially
// written response is still returned for the harness to discard or log.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) (res *Response, err error) {
	requestID := ulid.Make()
	start := time.Now()

	ctx, span := tracer.Start(ctx, "web.dispatch",
		trace.WithAttributes(
			attribute.String("request.path", req.Path),
			attribute.String("request.id", requestID.String()),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	entry, found := d.routes.Get(req.Path)
	handler := entry.Handler
	metricPath := req.Path
	if !found {
		handler = d.notFound
		metricPath = metricPathUnknown
		span.SetAttributes(attribute.Bool("request.route_miss", true))
	} else {
		span.SetAttributes(attribute.String("route.source", entry.Source))
	}

	res = NewResponse()
	ex := &Exchange{
		Request:  req,
		Response: res,
		Services: d.services,
	}

	err = handler(ctx, ex)
	if err != nil {
		slog.WarnContext(ctx, "route handler failed",
			"path", req.Path,
			"request_id", requestID.String(),
			"error", err,
		)
		recordDispatch(metricPath, StatusError, time.Since(start))
		return res, HandlerError(req.Path, err)
	}

	status := StatusSuccess
	if !found {
		status = StatusNotFound
	}
	recordDispatch(metricPath, status, time.Since(start))

	slog.DebugContext(ctx, "request dispatched",
		"path", req.Path,
		"request_id", requestID.String(),
		"status", status,
	)

	return res, nil
}
