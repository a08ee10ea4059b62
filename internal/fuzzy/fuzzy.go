// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// Package fuzzy finds the closest string among a set of candidates.
//
// Every Matcher scores pairs in [0,1] and accepts a candidate only when its
// score reaches the caller's threshold. When several candidates share the best
// score the earliest one wins.
package fuzzy

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Matcher names accepted by New.
const (
	NameRatio       = "ratio"
	NameJaroWinkler = "jarowinkler"
	NameLevenshtein = "levenshtein"
)

// DefaultThreshold is the minimum score a candidate needs to be returned.
const DefaultThreshold = 0.6

// ErrUnknownMatcher is returned by New for an unregistered name.
var ErrUnknownMatcher = errors.New("unknown fuzzy matcher")

// Match is the winning candidate of a Closest call.
type Match struct {
	Value string
	Index int
	Score float64
}

// Matcher picks the best-scoring candidate for a query.
type Matcher interface {
	Closest(query string, candidates []string, threshold float64) (Match, bool)
	Name() string
}

// Scorer turns a pairwise similarity function into a Matcher.
type Scorer struct {
	name  string
	score func(query, candidate string) float64
}

// Name returns the registered matcher name.
func (s Scorer) Name() string { return s.name }

// Closest scores every candidate and returns the first one with the highest
// score at or above threshold.
func (s Scorer) Closest(query string, candidates []string, threshold float64) (Match, bool) {
	if query == "" {
		return Match{}, false
	}

	best := Match{Index: -1}
	for i, c := range candidates {
		score := s.score(query, c)
		if score >= threshold && score > best.Score {
			best = Match{Value: c, Index: i, Score: score}
		}
	}
	return best, best.Index >= 0
}

var registry = map[string]func() Matcher{
	NameRatio:       func() Matcher { return Ratio{} },
	NameJaroWinkler: func() Matcher { return JaroWinkler() },
	NameLevenshtein: func() Matcher { return Levenshtein() },
}

// New returns the matcher registered under name. An empty name selects the
// ratio matcher.
func New(name string) (Matcher, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = NameRatio
	}
	ctor, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownMatcher, name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names lists the registered matcher names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
