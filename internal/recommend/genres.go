// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package recommend

import (
	"strings"

	"github.com/tomtom215/moviesense/internal/catalog"
	"github.com/tomtom215/moviesense/internal/fuzzy"
)

// genreDelimiters separate tokens inside a raw genre field.
const genreDelimiters = ",|/;"

// GenreIndex is the ordered set of genre tokens in a catalog together with
// the rules that resolve a free-text query to one of them.
type GenreIndex struct {
	tokens    []string
	known     map[string]struct{}
	aliases   map[string]string
	matcher   fuzzy.Matcher
	threshold float64
}

// GenreOption configures BuildGenres.
type GenreOption func(*GenreIndex)

// WithAliases installs alternative spellings. Keys and targets are
// normalized like queries.
func WithAliases(aliases map[string]string) GenreOption {
	return func(g *GenreIndex) {
		for alias, target := range aliases {
			a, t := normalizeQuery(alias), normalizeQuery(target)
			if a != "" && t != "" {
				g.aliases[a] = t
			}
		}
	}
}

// WithMatcher replaces the fuzzy matcher and its threshold.
func WithMatcher(m fuzzy.Matcher, threshold float64) GenreOption {
	return func(g *GenreIndex) {
		g.matcher = m
		g.threshold = threshold
	}
}

// BuildGenres collects every genre token of movies in order of first
// appearance.
func BuildGenres(movies []catalog.Movie, opts ...GenreOption) *GenreIndex {
	g := &GenreIndex{
		known:     make(map[string]struct{}),
		aliases:   make(map[string]string),
		matcher:   fuzzy.Ratio{},
		threshold: fuzzy.DefaultThreshold,
	}
	for i := range movies {
		for _, tok := range splitGenres(movies[i].Genre) {
			if _, ok := g.known[tok]; ok {
				continue
			}
			g.known[tok] = struct{}{}
			g.tokens = append(g.tokens, tok)
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// splitGenres returns the lowercase, trimmed, non-empty tokens of raw.
func splitGenres(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(genreDelimiters, r)
	})
	out := parts[:0]
	for _, p := range parts {
		if tok := normalizeQuery(p); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func normalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match resolves query to a known token. Aliases are tried first, then an
// exact token, then the closest fuzzy match, then the first token that
// contains the query.
func (g *GenreIndex) Match(query string) (string, bool) {
	q := normalizeQuery(query)
	if q == "" {
		return "", false
	}
	if target, ok := g.aliases[q]; ok {
		if _, known := g.known[target]; known {
			return target, true
		}
	}
	if _, ok := g.known[q]; ok {
		return q, true
	}
	if m, ok := g.matcher.Closest(q, g.tokens, g.threshold); ok {
		return m.Value, true
	}
	for _, tok := range g.tokens {
		if strings.Contains(tok, q) {
			return tok, true
		}
	}
	return "", false
}

// Tokens returns the known tokens in iteration order.
func (g *GenreIndex) Tokens() []string {
	out := make([]string, len(g.tokens))
	copy(out, g.tokens)
	return out
}

// Len returns the number of known tokens.
func (g *GenreIndex) Len() int {
	return len(g.tokens)
}
