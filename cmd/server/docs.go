// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// @title MovieSense API
// @version 1.0
// @description Content-based movie recommendations from a catalog file.
// @description Queries resolve as a release year, a genre or a title.
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Year, genre and title queries
//
// @tag.name Movies
// @tag.description Catalog listing, featured sample, genres and CSV export
//
// @tag.name Core
// @tag.description Health probes and service statistics

package main

import (
	// Registers the OpenAPI document served at /swagger/doc.json.
	_ "github.com/tomtom215/moviesense/docs"
)
