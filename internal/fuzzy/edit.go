// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package fuzzy

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"
)

// JaroWinkler favors candidates sharing a prefix with the query.
func JaroWinkler() Scorer {
	return Scorer{
		name: NameJaroWinkler,
		score: func(query, candidate string) float64 {
			return float64(edlib.JaroWinklerSimilarity(query, candidate))
		},
	}
}

// Levenshtein scores 1 - distance/longest, so identical strings score 1.
func Levenshtein() Scorer {
	return Scorer{name: NameLevenshtein, score: LevenshteinScore}
}

// LevenshteinScore returns the normalized edit similarity of a and b.
func LevenshteinScore(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
