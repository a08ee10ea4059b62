// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

/*
Package config provides centralized configuration management for MovieSense.

# Configuration Sources

Configuration is layered with koanf, each layer overriding the previous one:

  - Built-in defaults (defaultConfig)
  - Optional YAML file: the path passed to LoadFile, CONFIG_PATH, or the first
    of config.yaml, config.yml, /etc/moviesense/config.yaml
  - Mapped environment variables

# Environment Variables

Catalog:
  - MOVIESENSE_CATALOG_PATH: Dataset file (default: data/movies.csv)

Recommendation engine:
  - RECOMMEND_MATCHER: ratio, jarowinkler or levenshtein (default: ratio)
  - RECOMMEND_FUZZY_THRESHOLD: Minimum fuzzy score (default: 0.6)
  - RECOMMEND_GENRE_ALIASES: Comma-separated alias=genre pairs
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K, RECOMMEND_FEATURED_K
  - RECOMMEND_MAX_FEATURES: Vocabulary cap (default: 20000)
  - RECOMMEND_STEM: Enable Snowball stemming (default: false)
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_MAX_ENTRIES

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller location (default: false)

Metrics:
  - METRICS_ENABLED (default: true), METRICS_PATH (default: /metrics)

# Example YAML

	catalog:
	  path: /data/movies.parquet
	recommend:
	  matcher: jarowinkler
	  genre_aliases:
	    scifi: sci-fi
	  limits:
	    default_k: 12
	server:
	  port: 9000

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
