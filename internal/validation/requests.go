// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package validation

// MaxQueryLength is the longest accepted query, in characters.
const MaxQueryLength = 200

// RecommendRequest holds the parameters of a recommendation query.
// K is the requested number of similar titles; zero selects the default and
// values above the configured maximum are capped by the engine.
type RecommendRequest struct {
	Query string `query:"q" validate:"required,notblank,maxrunes=200"`
	K     int    `query:"k" validate:"gte=0,lte=10000"`
}

// ListRequest pages through the ranked catalog. A zero Limit returns every
// remaining movie.
type ListRequest struct {
	Limit  int `query:"limit" validate:"gte=0,lte=10000"`
	Offset int `query:"offset" validate:"gte=0"`
}

// FeaturedRequest asks for a featured sample of N movies; zero selects the
// default size.
type FeaturedRequest struct {
	N int `query:"n" validate:"gte=0,lte=1000"`
}

// ExportRequest selects what a CSV export contains: the results of Query,
// or the whole ranked catalog when Query is empty.
type ExportRequest struct {
	Query string `query:"q" validate:"omitempty,notblank,maxrunes=200"`
	K     int    `query:"k" validate:"gte=0,lte=10000"`
}
