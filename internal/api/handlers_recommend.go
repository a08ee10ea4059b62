// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/moviesense/internal/logging"
	"github.com/tomtom215/moviesense/internal/models"
	"github.com/tomtom215/moviesense/internal/recommend"
	"github.com/tomtom215/moviesense/internal/validation"
)

// Recommendations handles GET /api/v1/recommendations?q=&k=
//
// The query is resolved as a year, a genre or a title. k bounds title
// similarity results; zero selects the configured default. A query that
// matches nothing returns an empty results array.
//
// @Summary Recommend movies
// @Description Resolves q as a release year, a genre or a title and returns matching movies ranked by rating.
// @Tags Recommendations
// @Produce json
// @Param q query string true "Year, genre or title" maxlength(200)
// @Param k query int false "Number of similar titles for title queries" minimum(0)
// @Success 200 {object} models.APIResponse{data=models.Recommendations}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := validation.RecommendRequest{Query: r.URL.Query().Get("q")}
	if !intParams(w, r, intParam{"k", &req.K}) || !validateRequest(w, r, &req) {
		return
	}

	eng := h.requireEngine(w, r)
	if eng == nil {
		return
	}
	if !h.checkMaxK(w, r, eng, req.K) {
		return
	}

	resp := eng.Query(req.Query, req.K)
	meta := newMetadata(r, start)
	meta.Cached = resp.Cached

	logging.Ctx(r.Context()).Debug().
		Str("query", logging.SanitizeQuery(req.Query)).
		Str("kind", string(resp.Kind)).
		Int("results", len(resp.Results)).
		Bool("cached", resp.Cached).
		Msg("Recommendations served")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.Recommendations{
			Query:   resp.Query,
			Kind:    string(resp.Kind),
			Matched: resp.Matched,
			Count:   len(resp.Results),
			Results: nonNil(resp.Results),
		},
		Metadata: meta,
	})
}

// checkMaxK rejects k above the engine's configured maximum.
func (h *Handler) checkMaxK(w http.ResponseWriter, r *http.Request, eng *recommend.Engine, k int) bool {
	maxK := eng.Config().Limits.MaxK
	if k <= maxK {
		return true
	}
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status: models.StatusError,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: &models.APIError{
			Code:    ErrCodeValidation,
			Message: "k must be less than or equal to " + strconv.Itoa(maxK),
			Details: map[string]interface{}{"field": "k", "tag": "lte"},
		},
	})
	return false
}

// Movies handles GET /api/v1/movies?limit=&offset=
//
// Returns the catalog ranked by rating with one movie per title. limit=0
// (the default) returns every movie from offset on.
//
// @Summary List movies
// @Tags Movies
// @Produce json
// @Param limit query int false "Page size, 0 for all" minimum(0)
// @Param offset query int false "Page start" minimum(0)
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req validation.ListRequest
	if !intParams(w, r, intParam{"limit", &req.Limit}, intParam{"offset", &req.Offset}) ||
		!validateRequest(w, r, &req) {
		return
	}

	eng := h.requireEngine(w, r)
	if eng == nil {
		return
	}

	all := eng.ListAll()
	page := paginate(all, req.Offset, req.Limit)
	respondSuccess(w, r, start, models.MovieList{
		Total:  len(all),
		Count:  len(page),
		Offset: req.Offset,
		Limit:  req.Limit,
		Movies: page,
	})
}

// paginate returns the window [offset, offset+limit) of results, never nil.
func paginate(results []recommend.Result, offset, limit int) []recommend.Result {
	if offset >= len(results) {
		return []recommend.Result{}
	}
	end := len(results)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return results[offset:end]
}

// Featured handles GET /api/v1/movies/featured?n=
//
// Returns the first n distinct titles in catalog order for a landing page.
//
// @Summary Featured movies
// @Tags Movies
// @Produce json
// @Param n query int false "Sample size" minimum(0)
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /movies/featured [get]
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req validation.FeaturedRequest
	if !intParams(w, r, intParam{"n", &req.N}) || !validateRequest(w, r, &req) {
		return
	}

	eng := h.requireEngine(w, r)
	if eng == nil {
		return
	}

	movies := eng.Featured(req.N)
	respondSuccess(w, r, start, models.MovieList{
		Total:  len(movies),
		Count:  len(movies),
		Limit:  req.N,
		Movies: nonNil(movies),
	})
}

// Genres handles GET /api/v1/genres
//
// @Summary List genres
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.GenreList}
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	eng := h.requireEngine(w, r)
	if eng == nil {
		return
	}

	genres := eng.Genres()
	if genres == nil {
		genres = []string{}
	}
	respondSuccess(w, r, start, models.GenreList{Count: len(genres), Genres: genres})
}

// ExportCSV handles GET /api/v1/movies/export.csv?q=&k=
//
// Streams the ranked catalog, or the results of q when given, as CSV with
// the MovieTitle,Genre,Year,Rating,PosterURL header.
//
// @Summary Export movies as CSV
// @Tags Movies
// @Produce text/csv
// @Param q query string false "Export the results of this query" maxlength(200)
// @Param k query int false "Number of similar titles for title queries" minimum(0)
// @Success 200 {file} file
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /movies/export.csv [get]
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req := validation.ExportRequest{Query: r.URL.Query().Get("q")}
	if !intParams(w, r, intParam{"k", &req.K}) || !validateRequest(w, r, &req) {
		return
	}

	eng := h.requireEngine(w, r)
	if eng == nil {
		return
	}
	if !h.checkMaxK(w, r, eng, req.K) {
		return
	}

	var results []recommend.Result
	filename := "movies.csv"
	if req.Query != "" {
		results = eng.Recommend(req.Query, req.K)
		filename = "recommendations.csv"
	} else {
		results = eng.ListAll()
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	if err := recommend.WriteCSV(w, results); err != nil {
		// Headers are already sent; the client sees a truncated file.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("CSV export interrupted")
	}
}

func nonNil(results []recommend.Result) []recommend.Result {
	if results == nil {
		return []recommend.Result{}
	}
	return results
}
