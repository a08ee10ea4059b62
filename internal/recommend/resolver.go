// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package recommend

import (
	"strconv"
	"strings"
)

// Resolve classifies query and collects its candidate catalog indices.
// Dispatch order is fixed: an all-digit query is a year, then a genre match
// wins over a title match. topN bounds title candidates only.
func (e *Engine) Resolve(query string, topN int) Resolution {
	q := strings.TrimSpace(query)
	if q == "" {
		return Resolution{Kind: QueryNone}
	}

	if isDigits(q) {
		return Resolution{Kind: QueryYear, Candidates: e.byYear(q)}
	}

	if token, ok := e.genres.Match(q); ok {
		return Resolution{Kind: QueryGenre, Token: token, Candidates: e.byGenre(token)}
	}

	if anchor, ok := e.findTitle(q); ok {
		return Resolution{Kind: QueryTitle, Anchor: &anchor, Candidates: e.similarTo(anchor, topN)}
	}

	return Resolution{Kind: QueryNone}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// byYear returns the movies released in year. A year too large for an int
// matches nothing.
func (e *Engine) byYear(digits string) []int {
	year, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	var out []int
	for i := range e.movies {
		if y := e.movies[i].Year; y != nil && *y == year {
			out = append(out, i)
		}
	}
	return out
}

// byGenre returns the movies whose genre text contains token.
func (e *Engine) byGenre(token string) []int {
	var out []int
	for i, g := range e.genresLower {
		if strings.Contains(g, token) {
			out = append(out, i)
		}
	}
	return out
}

// findTitle returns the first title containing q case-insensitively, or
// else the closest fuzzy match of q.
func (e *Engine) findTitle(q string) (int, bool) {
	lq := strings.ToLower(q)
	for i, t := range e.titlesLower {
		if strings.Contains(t, lq) {
			return i, true
		}
	}
	if m, ok := e.matcher.Closest(q, e.titles, e.config.FuzzyThreshold); ok {
		return m.Index, true
	}
	return 0, false
}

// similarTo returns up to topN movies most similar to anchor, skipping
// every movie that shares its title.
func (e *Engine) similarTo(anchor, topN int) []int {
	if topN <= 0 {
		return nil
	}
	title := e.movies[anchor].Title
	out := make([]int, 0, topN)
	for _, nb := range e.matrix.MostSimilar(anchor, e.matrix.Size()) {
		if len(out) == topN {
			break
		}
		if e.movies[nb.Index].Title == title {
			continue
		}
		out = append(out, nb.Index)
	}
	return out
}
