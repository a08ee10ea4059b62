// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// Package main provides the moviesense command line client.
//
// It loads a catalog file and answers queries locally, without a server:
//
//	moviesense --catalog data/movies.csv recommend inception -k 5
//	moviesense --catalog data/movies.csv recommend 1995
//	moviesense --catalog data/movies.csv list --limit 20
//	moviesense --catalog data/movies.csv export -o top.csv --query drama
//
// Every command prints a table, or JSON with --json. Configuration comes from
// the same config.yaml and environment variables as the server; --catalog
// overrides the catalog path.
package main

import (
	"os"
)

var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown" // Set via ldflags: -X main.buildTime=$(date +%Y%m%d-%H%M%S)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
