// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package catalog

import (
	"strconv"
	"strings"
)

// Column names of the source dataset and of CSV exports.
const (
	ColumnTitle     = "MovieTitle"
	ColumnGenre     = "Genre"
	ColumnYear      = "Year"
	ColumnRating    = "Rating"
	ColumnPosterURL = "PosterURL"
	ColumnOverview  = "Overview"
)

// RequiredColumns lists the columns every dataset is expected to carry, in
// export order. Missing ones are recovered as all-absent.
var RequiredColumns = []string{ColumnTitle, ColumnGenre, ColumnYear, ColumnRating, ColumnPosterURL}

// Movie is one normalized catalog row.
type Movie struct {
	// Index is the position of the movie in its catalog.
	Index int `json:"index"`

	Title string `json:"title"`

	// Genre is the raw genre text, possibly multi-valued ("Action, Drama").
	Genre string `json:"genre"`

	// Year is nil when the source cell was absent or not numeric.
	Year *int `json:"year,omitempty"`

	// Rating is nil when the source cell was absent or not numeric.
	Rating *float64 `json:"rating,omitempty"`

	// RatingRaw keeps the trimmed source text of a parseable rating so
	// exports reproduce it verbatim ("8.0" stays "8.0").
	RatingRaw string `json:"-"`

	PosterURL string `json:"poster_url,omitempty"`
	Overview  string `json:"overview,omitempty"`

	// Combined is the text the similarity engine vectorizes.
	Combined string `json:"-"`
}

// Catalog is an ordered, index-stable sequence of movies.
type Catalog struct {
	Movies []Movie

	// HasOverview reports whether the source carried an Overview column.
	HasOverview bool

	// Source is the path the catalog was loaded from, if any.
	Source string

	// Warnings lists every condition recovered during normalization.
	Warnings []Warning
}

// New builds a catalog from in-memory movies. Index and Combined are
// recomputed, so callers only fill the descriptive fields.
func New(movies []Movie, hasOverview bool) *Catalog {
	out := make([]Movie, len(movies))
	for i := range movies {
		m := movies[i]
		m.Index = i
		m.Title = strings.TrimSpace(m.Title)
		m.Genre = strings.TrimSpace(m.Genre)
		m.Combined = combine(&m, hasOverview)
		out[i] = m
	}
	return &Catalog{Movies: out, HasOverview: hasOverview}
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.Movies)
}

// Titles returns every title in catalog order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.Movies))
	for i := range c.Movies {
		titles[i] = c.Movies[i].Title
	}
	return titles
}

// Texts returns every Combined text in catalog order; element i belongs to movie i.
func (c *Catalog) Texts() []string {
	texts := make([]string, len(c.Movies))
	for i := range c.Movies {
		texts[i] = c.Movies[i].Combined
	}
	return texts
}

// combine joins title, genre, year and overview with single spaces,
// skipping empty parts.
func combine(m *Movie, withOverview bool) string {
	parts := make([]string, 0, 4)
	if m.Title != "" {
		parts = append(parts, m.Title)
	}
	if m.Genre != "" {
		parts = append(parts, m.Genre)
	}
	if m.Year != nil {
		parts = append(parts, strconv.Itoa(*m.Year))
	}
	if withOverview && strings.TrimSpace(m.Overview) != "" {
		parts = append(parts, strings.TrimSpace(m.Overview))
	}
	return strings.Join(parts, " ")
}
