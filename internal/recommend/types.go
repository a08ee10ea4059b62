// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package recommend

import (
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/moviesense/internal/catalog"
)

// QueryKind is the branch a query resolved through.
type QueryKind string

// Query kinds, in dispatch order.
const (
	QueryYear  QueryKind = "year"
	QueryGenre QueryKind = "genre"
	QueryTitle QueryKind = "title"
	QueryNone  QueryKind = "none"
)

// Result is one movie returned to callers.
type Result struct {
	Title     string   `json:"title"`
	Genre     string   `json:"genre"`
	Year      *int     `json:"year"`
	Rating    *float64 `json:"rating"`
	PosterURL string   `json:"poster_url"`

	// ratingRaw is the source text of Rating, reproduced by WriteCSV.
	ratingRaw string
}

// newResult copies the exposed fields of m. Optional fields get fresh
// pointers so callers cannot reach catalog state.
func newResult(m *catalog.Movie) Result {
	r := Result{
		Title:     m.Title,
		Genre:     m.Genre,
		PosterURL: m.PosterURL,
		ratingRaw: m.RatingRaw,
	}
	if m.Year != nil {
		y := *m.Year
		r.Year = &y
	}
	if m.Rating != nil {
		v := *m.Rating
		r.Rating = &v
	}
	return r
}

// HasPoster reports whether PosterURL looks like a fetchable image URL.
func (r Result) HasPoster() bool {
	return strings.HasPrefix(r.PosterURL, "http")
}

// DisplayTitle renders "Title (Year)", or just the title when the year is unknown.
func (r Result) DisplayTitle() string {
	if r.Year == nil {
		return r.Title
	}
	return r.Title + " (" + strconv.Itoa(*r.Year) + ")"
}

// Resolution describes how a query was classified and which catalog
// indices it produced, before ranking.
type Resolution struct {
	Kind QueryKind

	// Token is the matched genre token for genre queries.
	Token string

	// Anchor is the catalog index a title query resolved to.
	Anchor *int

	// Candidates are catalog indices in resolution order.
	Candidates []int
}

// Response is the outcome of Engine.Query.
type Response struct {
	Query string    `json:"query"`
	Kind  QueryKind `json:"kind"`

	// Matched is the genre token or the anchor title the query resolved to.
	Matched string `json:"matched,omitempty"`

	Results []Result `json:"results"`
	Cached  bool     `json:"cached"`
}

// Stats summarizes a built engine.
type Stats struct {
	Movies        int            `json:"movies"`
	UniqueTitles  int            `json:"unique_titles"`
	Genres        int            `json:"genres"`
	Vocabulary    int            `json:"vocabulary"`
	Matcher       string         `json:"matcher"`
	Source        string         `json:"source,omitempty"`
	BuildDuration time.Duration  `json:"build_duration_ns"`
	Warnings      map[string]int `json:"warnings"`
	BuiltAt       time.Time      `json:"built_at"`
}
