// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// Package recommend answers movie queries against an in-memory catalog.
//
// # Query Resolution
//
// A query is classified once, in a fixed order:
//
//   - Year: an all-digit query selects movies released that year
//   - Genre: a query resolving to a genre token (alias, exact, fuzzy or
//     substring) selects movies whose genre text contains the token
//   - Title: a query found in a title, or fuzzily close to one, selects the
//     most similar other movies by TF-IDF cosine similarity
//
// A query matching none of these yields an empty result, never an error.
//
// # Ranking
//
// Candidates are ordered by rating, highest first, with unrated movies last,
// and only the first movie of each title is kept.
//
// # Usage
//
//	eng, err := recommend.LoadEngine(ctx, "movies.csv", recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	for _, r := range eng.Recommend("inception", 10) {
//	    fmt.Println(r.DisplayTitle())
//	}
//
// # Thread Safety
//
// An Engine is immutable after Build apart from its internally locked result
// cache and is safe for concurrent use. Loading a different catalog means
// building a new Engine.
package recommend
