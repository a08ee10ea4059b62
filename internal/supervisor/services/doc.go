// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// Package services provides suture.Service wrappers for the MovieSense server.
//
//   - HTTPServerService binds a listener per run, serves the API router and
//     drains in-flight requests when its context is canceled.
//   - CatalogService polls the dataset file and rebuilds the recommendation
//     engine when it changes, handing each new engine to an EngineSetter.
package services
