// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// Package catalog loads movie datasets and normalizes them into typed records.
//
// A dataset is any tabular source with the columns MovieTitle, Genre, Year,
// Rating and PosterURL, plus an optional Overview. Sources are read into a
// raw Table by a Reader chosen from the file extension and then passed
// through Normalize, which never drops a row:
//
//   - a missing column is treated as entirely absent (MissingColumn warning)
//   - a non-numeric Year or Rating cell becomes absent for that movie
//     (UnparseableValue warning)
//
// Only an unreadable or structurally invalid source is fatal; those errors
// wrap ErrUnreadable.
//
// A Catalog is immutable after construction. Movie.Index is the position of
// the movie in Catalog.Movies and is the key every derived structure (genre
// index, similarity matrix) uses to refer back to it.
package catalog
