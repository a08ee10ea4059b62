// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package fuzzy

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Ratio scores candidates with the sequence-matcher ratio 2*M/T, where M is
// the number of matched runes and T the combined length. Cheap upper bounds
// are checked first so most candidates never reach the full comparison.
type Ratio struct{}

// Name implements Matcher.
func (Ratio) Name() string { return NameRatio }

// Closest implements Matcher.
func (Ratio) Closest(query string, candidates []string, threshold float64) (Match, bool) {
	if query == "" {
		return Match{}, false
	}

	sm := difflib.NewMatcher(nil, nil)
	// seq2 carries the expensive index, so it holds the fixed query.
	sm.SetSeq2(runes(query))

	best := Match{Index: -1}
	for i, c := range candidates {
		sm.SetSeq1(runes(c))
		if sm.RealQuickRatio() < threshold || sm.QuickRatio() < threshold {
			continue
		}
		score := sm.Ratio()
		if score >= threshold && score > best.Score {
			best = Match{Value: c, Index: i, Score: score}
		}
	}
	return best, best.Index >= 0
}

// RatioScore returns the sequence-matcher ratio of a and b.
func RatioScore(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
