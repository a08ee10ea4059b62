// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moviesense/internal/metrics"
	"github.com/tomtom215/moviesense/internal/models"
)

// health builds the status shared by the health endpoints.
func (h *Handler) health() models.HealthStatus {
	status := models.HealthStatus{
		Status:  "unavailable",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if eng := h.engine.Load(); eng != nil {
		stats := eng.Stats()
		status.Status = "healthy"
		status.CatalogLoaded = true
		status.Movies = stats.Movies
		status.BuiltAt = stats.BuiltAt
	}
	return status
}

// Health handles GET /api/v1/health
//
// Always 200; the body tells whether the catalog is loaded.
//
// @Summary Service health
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), h.health())
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of the catalog.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 only once a recommendation engine is serving, 503 before.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.health()
	if !status.CatalogLoaded {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Catalog is not loaded yet", nil)
		return
	}
	respondSuccess(w, r, time.Now(), status)
}

// Stats handles GET /api/v1/stats
//
// Reports the catalog index, result cache counters and per-endpoint latency
// over the recent request window.
//
// @Summary Service statistics
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ServiceStats}
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	eng := h.requireEngine(w, r)
	if eng == nil {
		return
	}

	es := eng.Stats()
	cfg := eng.Config()
	hits, misses, size := eng.CacheStats()
	cache := models.CacheStats{
		Enabled: cfg.Cache.Enabled,
		Hits:    hits,
		Misses:  misses,
		Size:    size,
	}
	if total := hits + misses; total > 0 {
		cache.HitRate = float64(hits) / float64(total)
	}

	metrics.UpdateUptime(h.startTime)
	respondSuccess(w, r, start, models.ServiceStats{
		Catalog: models.CatalogStats{
			Source:          es.Source,
			Movies:          es.Movies,
			UniqueTitles:    es.UniqueTitles,
			Genres:          es.Genres,
			Vocabulary:      es.Vocabulary,
			Matcher:         es.Matcher,
			BuildDurationMS: es.BuildDuration.Milliseconds(),
			BuiltAt:         es.BuiltAt,
			Warnings:        es.Warnings,
		},
		Cache:     cache,
		Endpoints: h.perfMon.Stats(),
		Uptime:    time.Since(h.startTime).Seconds(),
	})
}
