// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

/*
Package main is the entry point for the MovieSense HTTP server.

MovieSense answers movie queries from a catalog file: a release year, a
genre, or a title to find similar movies for.

# Startup

 1. Configuration: koanf v2 layering defaults, config.yaml and environment
 2. Logging: zerolog, JSON or console
 3. Catalog: the dataset is loaded and the engine built; failure is fatal
 4. Supervisor tree: suture v4 with the HTTP server and, when
    CATALOG_RELOAD_INTERVAL is set, the catalog reload service

# Signals

SIGINT and SIGTERM stop the tree; in-flight requests get
SHUTDOWN_TIMEOUT to finish. SIGHUP rebuilds the engine from the catalog file
without a restart.

# Example

	export MOVIESENSE_CATALOG_PATH=data/movies.csv
	export HTTP_PORT=8080
	export LOG_FORMAT=console
	./moviesense-server

	curl 'http://localhost:8080/api/v1/recommendations?q=inception&k=5'

The OpenAPI document is served at /swagger/doc.json with a browsable UI at
/swagger/index.html. After changing handler annotations, regenerate it with

	swag init -g cmd/server/docs.go -o docs
*/
package main
