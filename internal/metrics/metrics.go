// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviesense_recommend_requests_total",
			Help: "Total number of recommendation queries by resolved kind",
		},
		[]string{"kind"}, // "year", "genre", "title", "none"
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviesense_recommend_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"kind"},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviesense_recommend_results",
			Help:    "Number of results returned per recommendation query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
		},
	)

	// Result Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviesense_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviesense_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviesense_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviesense_catalog_warnings_total",
			Help: "Total number of recovered catalog conditions",
		},
		[]string{"kind"},
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviesense_catalog_load_duration_seconds",
			Help:    "Duration of catalog source reads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"reader"}, // "csv", "read_parquet", "read_json_auto"
	)

	SimilarityBuildSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviesense_similarity_build_seconds",
			Help: "Duration of the last similarity matrix build in seconds",
		},
	)

	SimilarityVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviesense_similarity_vocabulary",
			Help: "Number of terms kept by the TF-IDF vectorizer",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviesense_catalog_reloads_total",
			Help: "Catalog reload attempts after the dataset changed on disk",
		},
		[]string{"result"}, // success, failure
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	APIRateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordRecommendation records one resolved recommendation query.
func RecordRecommendation(kind string, results int, duration time.Duration) {
	RecommendRequests.WithLabelValues(kind).Inc()
	RecommendDuration.WithLabelValues(kind).Observe(duration.Seconds())
	RecommendResults.Observe(float64(results))
}

// RecordCacheLookup records a result cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordCatalogLoad records a source read by the named reader.
func RecordCatalogLoad(reader string, duration time.Duration) {
	CatalogLoadDuration.WithLabelValues(reader).Observe(duration.Seconds())
}

// RecordCatalog publishes the size and recovered warnings of a freshly
// loaded catalog. warnings maps warning kind to count.
func RecordCatalog(movies int, warnings map[string]int) {
	CatalogMovies.Set(float64(movies))
	for kind, n := range warnings {
		CatalogWarnings.WithLabelValues(kind).Add(float64(n))
	}
}

// RecordCatalogReload counts a reload attempt.
func RecordCatalogReload(success bool) {
	if success {
		CatalogReloads.WithLabelValues("success").Inc()
		return
	}
	CatalogReloads.WithLabelValues("failure").Inc()
}

// RecordSimilarityBuild publishes the cost and size of a similarity build.
func RecordSimilarityBuild(duration time.Duration, vocabulary int) {
	SimilarityBuildSeconds.Set(duration.Seconds())
	SimilarityVocabulary.Set(float64(vocabulary))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit() {
	APIRateLimitHits.Inc()
}

// SetAppInfo publishes the running version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// UpdateUptime sets the uptime gauge from the process start time.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
