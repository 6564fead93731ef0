// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package web

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for dispatch metrics.
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusNotFound = "not_found"
)

// Dispatches is the counter for route dispatches.
// Use RegisterMetrics to register this with a Prometheus registry.
var Dispatches = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hallpass_dispatches_total",
		Help: "Total number of route dispatches",
	},
	[]string{"path", "status"},
)

// DispatchDuration is the histogram for dispatch duration.
// Use RegisterMetrics to register this with a Prometheus registry.
var DispatchDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "hallpass_dispatch_duration_seconds",
		Help:    "Route dispatch duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path"},
)

// RegisterMetrics registers web package metrics with the given Prometheus
// registry. Call once at startup. Panics if registration fails (prometheus
// convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Dispatches)
	reg.MustRegister(DispatchDuration)
}

// recordDispatch increments the dispatch counter and observes the duration.
// Unknown paths are recorded under the fallback label to keep metric
// cardinality bounded.
func recordDispatch(path, status string, elapsed time.Duration) {
	Dispatches.WithLabelValues(path, status).Inc()
	DispatchDuration.WithLabelValues(path).Observe(elapsed.Seconds())
}
