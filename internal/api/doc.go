// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

/*
Package api serves the MovieSense recommendation engine over HTTP.

Routes (chi):

	GET /api/v1/recommendations?q=&k=   resolve q as year, genre or title
	GET /api/v1/movies?limit=&offset=   catalog ranked by rating, one per title
	GET /api/v1/movies/featured?n=      first n distinct titles in catalog order
	GET /api/v1/movies/export.csv?q=&k= CSV export of the catalog or of q's results
	GET /api/v1/genres                  known genre tokens
	GET /api/v1/stats                   catalog, cache and latency statistics
	GET /api/v1/health[/live|/ready]    health probes
	GET /metrics                        Prometheus exposition (configurable path)
	GET /swagger/*                      OpenAPI document (doc.json) and UI

Every JSON response uses the models.APIResponse envelope. Invalid query
parameters produce a 400 with code VALIDATION_ERROR; a query that matches
nothing is a 200 with an empty results array.

Middleware, outermost first: request ID, real IP, access log and latency
window, Prometheus request metrics, panic recovery, CORS and security headers.
Data routes are additionally rate limited per client IP (go-chi/httprate) and
gzip-compressed; health routes are not rate limited.

The engine behind a Handler can be replaced at runtime with SetEngine; until
an engine is set, data routes and the readiness probe answer 503.
*/
package api
