// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package models

import (
	"github.com/tomtom215/moviesense/internal/recommend"
)

// Recommendations is the payload of GET /api/v1/recommendations.
type Recommendations struct {
	Query   string             `json:"query"`
	Kind    string             `json:"kind"`
	Matched string             `json:"matched,omitempty"`
	Count   int                `json:"count"`
	Results []recommend.Result `json:"results"`
}

// MovieList is a page of the rating-ranked catalog.
type MovieList struct {
	Total  int                `json:"total"`
	Count  int                `json:"count"`
	Offset int                `json:"offset"`
	Limit  int                `json:"limit"`
	Movies []recommend.Result `json:"movies"`
}

// GenreList holds the known genre tokens in catalog order.
type GenreList struct {
	Count  int      `json:"count"`
	Genres []string `json:"genres"`
}
