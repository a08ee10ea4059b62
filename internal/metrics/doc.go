// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
served by the API at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendation Metrics:
  - moviesense_recommend_requests_total: Queries handled (counter)
    Labels: kind (year, genre, title, none)
  - moviesense_recommend_duration_seconds: Query latency (histogram)
    Labels: kind
  - moviesense_recommend_results: Results returned per query (histogram)

Cache Metrics:
  - moviesense_cache_hits_total, moviesense_cache_misses_total (counters)

Catalog Metrics:
  - moviesense_catalog_movies: Movies in the loaded catalog (gauge)
  - moviesense_catalog_warnings_total: Recovered load conditions (counter)
    Labels: kind (missing_column, unparseable_value)
  - moviesense_catalog_load_duration_seconds: Source read time (histogram)
    Labels: reader
  - moviesense_similarity_build_seconds: Last similarity build time (gauge)
  - moviesense_similarity_vocabulary: Terms kept by the vectorizer (gauge)

HTTP Metrics:
  - api_requests_total: Labels method, endpoint, status_code
  - api_request_duration_seconds: Labels method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by the rate limiter

Application Metrics:
  - app_info: Labels version, go_version
  - app_uptime_seconds
*/
package metrics
