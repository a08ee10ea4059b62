// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package models

import (
	"time"

	"github.com/tomtom215/moviesense/internal/middleware"
)

// HealthStatus reports process liveness and catalog readiness.
type HealthStatus struct {
	Status        string    `json:"status"` // "healthy" or "unavailable"
	Version       string    `json:"version"`
	CatalogLoaded bool      `json:"catalog_loaded"`
	Movies        int       `json:"movies"`
	BuiltAt       time.Time `json:"built_at,omitempty"`
	Uptime        float64   `json:"uptime_seconds"`
}

// CacheStats reports the recommendation result cache counters.
type CacheStats struct {
	Enabled bool    `json:"enabled"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Size    int     `json:"size"`
	HitRate float64 `json:"hit_rate"`
}

// ServiceStats is the payload of GET /api/v1/stats.
type ServiceStats struct {
	Catalog   CatalogStats               `json:"catalog"`
	Cache     CacheStats                 `json:"cache"`
	Endpoints []middleware.EndpointStats `json:"endpoints"`
	Uptime    float64                    `json:"uptime_seconds"`
}

// CatalogStats summarizes the loaded catalog and its index.
type CatalogStats struct {
	Source          string         `json:"source"`
	Movies          int            `json:"movies"`
	UniqueTitles    int            `json:"unique_titles"`
	Genres          int            `json:"genres"`
	Vocabulary      int            `json:"vocabulary"`
	Matcher         string         `json:"matcher"`
	BuildDurationMS int64          `json:"build_duration_ms"`
	BuiltAt         time.Time      `json:"built_at"`
	Warnings        map[string]int `json:"warnings"`
}
