// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tomtom215/moviesense/internal/logging"
	"github.com/tomtom215/moviesense/internal/middleware"
	"github.com/tomtom215/moviesense/internal/recommend"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, engine swap
//   - handlers_helpers.go: envelope and parameter helpers
//   - handlers_recommend.go: recommendation, catalog, genre and export endpoints
//   - handlers_health.go: health probes and statistics
type Handler struct {
	engine    atomic.Pointer[recommend.Engine]
	perfMon   *middleware.PerformanceMonitor
	version   string
	startTime time.Time
}

// NewHandler creates a handler serving engine. A nil engine is allowed: the
// readiness probe and data endpoints report 503 until SetEngine is called.
func NewHandler(engine *recommend.Engine, version string) *Handler {
	h := &Handler{
		perfMon:   middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowThreshold),
		version:   version,
		startTime: time.Now(),
	}
	if engine != nil {
		h.engine.Store(engine)
	}
	return h
}

// SetEngine atomically replaces the engine serving requests. In-flight
// requests finish on the engine they started with.
func (h *Handler) SetEngine(engine *recommend.Engine) {
	h.engine.Store(engine)
	if engine != nil {
		stats := engine.Stats()
		logging.Info().
			Str("source", stats.Source).
			Int("movies", stats.Movies).
			Msg("Recommendation engine swapped in")
	}
}

// Engine returns the current engine, or nil before one is set.
func (h *Handler) Engine() *recommend.Engine {
	return h.engine.Load()
}

// PerformanceMonitor returns the monitor fed by the router's access log.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// requireEngine returns the current engine or writes a 503.
func (h *Handler) requireEngine(w http.ResponseWriter, r *http.Request) *recommend.Engine {
	eng := h.engine.Load()
	if eng == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Catalog is not loaded yet", nil)
	}
	return eng
}
