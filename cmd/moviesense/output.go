// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moviesense/internal/recommend"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeResponse prints how the query resolved, then its results.
func writeResponse(w io.Writer, resp recommend.Response) error {
	switch {
	case resp.Kind == recommend.QueryNone || len(resp.Results) == 0:
		_, err := fmt.Fprintf(w, "No movies found for %q\n", resp.Query)
		return err
	case resp.Matched != "":
		fmt.Fprintf(w, "%s match: %s\n\n", resp.Kind, resp.Matched)
	default:
		fmt.Fprintf(w, "%s match\n\n", resp.Kind)
	}
	return writeTable(w, resp.Results)
}

func writeTable(w io.Writer, results []recommend.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tGENRE\tRATING\tPOSTER")
	for i := range results {
		r := &results[i]
		poster := "-"
		if r.HasPoster() {
			poster = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.DisplayTitle(), r.Genre, formatRating(r.Rating), poster)
	}
	return tw.Flush()
}

func formatRating(r *float64) string {
	if r == nil {
		return "-"
	}
	return strconv.FormatFloat(*r, 'f', 1, 64)
}

func writeStats(w io.Writer, s recommend.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Source:\t%s\n", s.Source)
	fmt.Fprintf(tw, "Movies:\t%d\n", s.Movies)
	fmt.Fprintf(tw, "Unique titles:\t%d\n", s.UniqueTitles)
	fmt.Fprintf(tw, "Genres:\t%d\n", s.Genres)
	fmt.Fprintf(tw, "Vocabulary:\t%d\n", s.Vocabulary)
	fmt.Fprintf(tw, "Matcher:\t%s\n", s.Matcher)
	fmt.Fprintf(tw, "Build time:\t%s\n", s.BuildDuration)

	kinds := make([]string, 0, len(s.Warnings))
	for k := range s.Warnings {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(tw, "Warnings (%s):\t%d\n", k, s.Warnings[k])
	}
	return tw.Flush()
}
