// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package recommend

import (
	"sort"

	"github.com/tomtom215/moviesense/internal/catalog"
)

// Rank orders candidates by rating, highest first, with unrated movies after
// every rated one, then keeps the first movie of each title. Equal keys keep
// candidate order.
func Rank(movies []catalog.Movie, candidates []int) []Result {
	order := make([]int, len(candidates))
	copy(order, candidates)
	sort.SliceStable(order, func(a, b int) bool {
		return ratedBefore(movies[order[a]].Rating, movies[order[b]].Rating)
	})
	return dedupe(movies, order)
}

func ratedBefore(a, b *float64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}

// dedupe converts order to results, dropping every title already emitted.
func dedupe(movies []catalog.Movie, order []int) []Result {
	seen := make(map[string]struct{}, len(order))
	out := make([]Result, 0, len(order))
	for _, idx := range order {
		m := &movies[idx]
		if _, dup := seen[m.Title]; dup {
			continue
		}
		seen[m.Title] = struct{}{}
		out = append(out, newResult(m))
	}
	return out
}
