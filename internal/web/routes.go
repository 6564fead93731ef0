// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package web

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/samber/oops"
)

// RouteTable manages route registration and lookup. It is populated once at
// startup; the lock keeps it safe should registration and dispatch ever
// overlap.
type RouteTable struct {
	routes map[string]RouteEntry
	mu     sync.RWMutex
}

// NewRouteTable creates an empty route table.
func NewRouteTable() *RouteTable {
	return &RouteTable{
		routes: make(map[string]RouteEntry),
	}
}

// Register adds a route to the table. If the path is already bound, the new
// entry wins and a warning is logged.
func (t *RouteTable) Register(entry RouteEntry) error {
	if !strings.HasPrefix(entry.Path, "/") {
		return oops.Code("WEB_INVALID_ROUTE").
			With("path", entry.Path).
			Errorf("route path must start with '/'")
	}
	if entry.Handler == nil {
		return oops.Code("WEB_INVALID_ROUTE").
			With("path", entry.Path).
			Errorf("route handler is required")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.routes[entry.Path]; ok {
		slog.Warn("route conflict: overwriting existing route",
			"path", entry.Path,
			"previous_source", existing.Source,
			"new_source", entry.Source)
	}

	t.routes[entry.Path] = entry
	return nil
}

// Get retrieves a route by exact path match.
// Returns the entry and true if found, or zero value and false if not found.
func (t *RouteTable) Get(path string) (RouteEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.routes[path]
	return entry, ok
}

// All returns all registered routes sorted by path.
// The returned slice is a copy and safe to modify.
func (t *RouteTable) All() []RouteEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := make([]RouteEntry, 0, len(t.routes))
	for _, e := range t.routes {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}
