// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

/*
Package models defines the JSON payloads of the MovieSense HTTP API.

Key Components:

  - APIResponse: the {status, data, metadata, error} envelope of every response
  - Recommendations, MovieList, GenreList: query and catalog payloads
  - HealthStatus, ServiceStats: health probe and operational statistics

Movie records themselves are recommend.Result values, serialized with their
title, genre, year, rating and poster_url fields; absent years and ratings are
null.
*/
package models
