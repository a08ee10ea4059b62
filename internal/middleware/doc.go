// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

/*
Package middleware provides the HTTP middleware shared by the MovieSense API.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and stores it for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by
    chi route pattern
  - PerformanceMonitor: sliding window of recent requests with per-endpoint
    percentiles, plus the access log

Middleware Stack:

The API router installs them as:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(monitor.Middleware)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Recoverer)

Route patterns are only known once chi has routed the request, so both
PerformanceMonitor and PrometheusMetrics read the pattern after calling the
next handler.

Thread Safety:

PerformanceMonitor is guarded by a RWMutex; the other middleware hold no state.
*/
package middleware
