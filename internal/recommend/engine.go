// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviesense/internal/cache"
	"github.com/tomtom215/moviesense/internal/catalog"
	"github.com/tomtom215/moviesense/internal/fuzzy"
	"github.com/tomtom215/moviesense/internal/logging"
	"github.com/tomtom215/moviesense/internal/metrics"
	"github.com/tomtom215/moviesense/internal/similarity"
)

// ErrEmptyCatalog is returned by Build for a catalog without movies.
var ErrEmptyCatalog = errors.New("catalog has no movies")

// Engine answers queries against one catalog. Everything except the result
// cache is fixed at Build time, so an Engine is safe for concurrent use.
// A reordered or reloaded catalog needs a new Engine.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog *catalog.Catalog
	movies  []catalog.Movie

	// Lowercased copies for substring matching; element i belongs to movie i.
	titles      []string
	titlesLower []string
	genresLower []string

	genres  *GenreIndex
	matrix  *similarity.Matrix
	matcher fuzzy.Matcher

	// cache is nil when caching is disabled.
	cache *cache.LRU[Response]

	stats Stats
}

// Build indexes cat and computes its similarity matrix.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Build(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil || cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	matcher, err := fuzzy.New(cfg.Matcher)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
		movies:  cat.Movies,
		titles:  cat.Titles(),
		matcher: matcher,
	}

	e.titlesLower = make([]string, len(e.movies))
	e.genresLower = make([]string, len(e.movies))
	for i := range e.movies {
		e.titlesLower[i] = strings.ToLower(e.movies[i].Title)
		e.genresLower[i] = strings.ToLower(e.movies[i].Genre)
	}

	e.genres = BuildGenres(e.movies,
		WithAliases(cfg.GenreAliases),
		WithMatcher(matcher, cfg.FuzzyThreshold))

	simStart := time.Now()
	e.matrix = similarity.Build(cat.Texts(), cfg.Similarity)
	simDuration := time.Since(simStart)

	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	e.stats = Stats{
		Movies:        len(e.movies),
		UniqueTitles:  countUnique(e.titles),
		Genres:        e.genres.Len(),
		Vocabulary:    e.matrix.Vocabulary(),
		Matcher:       matcher.Name(),
		Source:        cat.Source,
		BuildDuration: time.Since(start),
		Warnings:      countWarnings(cat.Warnings),
		BuiltAt:       time.Now(),
	}

	metrics.RecordCatalog(e.stats.Movies, e.stats.Warnings)
	metrics.RecordSimilarityBuild(simDuration, e.stats.Vocabulary)
	e.logWarnings(cat.Warnings)

	e.logger.Info().
		Int("movies", e.stats.Movies).
		Int("unique_titles", e.stats.UniqueTitles).
		Int("genres", e.stats.Genres).
		Int("vocabulary", e.stats.Vocabulary).
		Str("matcher", e.stats.Matcher).
		Dur("similarity_build", simDuration).
		Dur("total_build", e.stats.BuildDuration).
		Msg("recommendation engine built")

	return e, nil
}

// LoadEngine loads the catalog at path and builds an Engine over it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func LoadEngine(ctx context.Context, path string, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	cat, err := catalog.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return Build(cat, cfg, logger)
}

func countUnique(titles []string) int {
	seen := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		seen[t] = struct{}{}
	}
	return len(seen)
}

func countWarnings(warnings []catalog.Warning) map[string]int {
	out := make(map[string]int)
	for _, w := range warnings {
		out[w.Kind.String()]++
	}
	return out
}

func (e *Engine) logWarnings(warnings []catalog.Warning) {
	if len(warnings) == 0 {
		return
	}
	e.logger.Warn().
		Int("count", len(warnings)).
		Interface("by_kind", e.stats.Warnings).
		Msg("catalog loaded with recovered warnings")
	for _, w := range warnings {
		e.logger.Debug().
			Str("kind", w.Kind.String()).
			Str("column", w.Column).
			Int("row", w.Row).
			Str("value", w.Value).
			Msg("catalog warning")
	}
}

// Recommend returns the ranked, title-unique results for query. A topN of
// zero or less selects the configured default; larger values are capped.
// Queries that match nothing return an empty, non-nil slice.
func (e *Engine) Recommend(query string, topN int) []Result {
	return e.Query(query, topN).Results
}

// Query is Recommend with the resolution details callers may want to show.
func (e *Engine) Query(query string, topN int) Response {
	start := time.Now()
	topN = e.clampK(topN)
	q := strings.TrimSpace(query)
	key := strconv.Itoa(topN) + "|" + q

	if e.cache != nil {
		if resp, ok := e.cache.Get(key); ok {
			metrics.RecordCacheLookup(true)
			resp.Query = query
			resp.Results = append([]Result(nil), resp.Results...)
			resp.Cached = true
			metrics.RecordRecommendation(string(resp.Kind), len(resp.Results), time.Since(start))
			return resp
		}
		metrics.RecordCacheLookup(false)
	}

	res := e.Resolve(q, topN)
	resp := Response{
		Query:   query,
		Kind:    res.Kind,
		Results: Rank(e.movies, res.Candidates),
	}
	switch {
	case res.Kind == QueryGenre:
		resp.Matched = res.Token
	case res.Anchor != nil:
		resp.Matched = e.movies[*res.Anchor].Title
	}

	if e.cache != nil {
		cached := resp
		cached.Results = append([]Result(nil), resp.Results...)
		e.cache.Add(key, cached)
	}

	duration := time.Since(start)
	metrics.RecordRecommendation(string(resp.Kind), len(resp.Results), duration)
	e.logger.Debug().
		Str("query", logging.SanitizeQuery(q)).
		Str("kind", string(resp.Kind)).
		Str("matched", resp.Matched).
		Int("candidates", len(res.Candidates)).
		Int("returned", len(resp.Results)).
		Dur("latency", duration).
		Msg("recommendation complete")

	return resp
}

func (e *Engine) clampK(k int) int {
	if k <= 0 {
		return e.config.Limits.DefaultK
	}
	if k > e.config.Limits.MaxK {
		return e.config.Limits.MaxK
	}
	return k
}

// ListAll returns the whole catalog ranked by rating with one movie per title.
func (e *Engine) ListAll() []Result {
	all := make([]int, len(e.movies))
	for i := range all {
		all[i] = i
	}
	return Rank(e.movies, all)
}

// Featured returns the first n title-unique movies in catalog order. A
// non-positive n selects the configured default.
func (e *Engine) Featured(n int) []Result {
	if n <= 0 {
		n = e.config.Limits.FeaturedK
	}
	if n > e.config.Limits.MaxK {
		n = e.config.Limits.MaxK
	}
	seen := make(map[string]struct{}, n)
	out := make([]Result, 0, n)
	for i := range e.movies {
		if len(out) == n {
			break
		}
		m := &e.movies[i]
		if _, dup := seen[m.Title]; dup {
			continue
		}
		seen[m.Title] = struct{}{}
		out = append(out, newResult(m))
	}
	return out
}

// Genres returns the known genre tokens in catalog order.
func (e *Engine) Genres() []string {
	return e.genres.Tokens()
}

// Stats returns a summary of the built engine.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Warnings = make(map[string]int, len(e.stats.Warnings))
	for k, v := range e.stats.Warnings {
		s.Warnings[k] = v
	}
	return s
}

// Similarity returns the similarity matrix row-aligned with Catalog().Movies.
func (e *Engine) Similarity() *similarity.Matrix {
	return e.matrix
}

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// CacheStats reports result cache counters. All values are zero when
// caching is disabled.
func (e *Engine) CacheStats() (hits, misses int64, size int) {
	if e.cache == nil {
		return 0, 0, 0
	}
	return e.cache.Stats()
}
