// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// Package validation validates API request parameters with
// go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata and is safe for concurrent use. Field errors are reported under the
// query parameter name taken from the `query` struct tag, so a failing
// RecommendRequest.Query is reported as "q".
//
// Custom tags:
//   - notblank: the string must contain a non-whitespace character
//   - maxrunes=N: the string is at most N characters long
//
// Example:
//
//	req := validation.RecommendRequest{Query: r.URL.Query().Get("q")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // 400 with code validation.ErrorCode and verr.Error() as message
//	}
package validation
