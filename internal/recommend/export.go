// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package recommend

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tomtom215/moviesense/internal/catalog"
)

// WriteCSV writes results with the header MovieTitle,Genre,Year,Rating,PosterURL.
// Absent years and ratings are empty cells; ratings keep their source text
// when one was loaded.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(catalog.RequiredColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(catalog.RequiredColumns))
	for i := range results {
		r := &results[i]
		record[0] = r.Title
		record[1] = r.Genre
		record[2] = formatYear(r.Year)
		record[3] = formatRating(r)
		record[4] = r.PosterURL
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatYear(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}

func formatRating(r *Result) string {
	switch {
	case r.Rating == nil:
		return ""
	case r.ratingRaw != "":
		return r.ratingRaw
	default:
		return strconv.FormatFloat(*r.Rating, 'f', -1, 64)
	}
}
