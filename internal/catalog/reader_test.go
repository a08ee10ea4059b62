// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package catalog

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReaderFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Reader
		wantErr bool
	}{
		{"movies.csv", CSVReader{Comma: ','}, false},
		{"MOVIES.CSV", CSVReader{Comma: ','}, false},
		{"movies.tsv", CSVReader{Comma: '\t'}, false},
		{"movies.parquet", DuckDBReader{Function: "read_parquet"}, false},
		{"movies.json", DuckDBReader{Function: "read_json_auto"}, false},
		{"movies.ndjson", DuckDBReader{Function: "read_json_auto"}, false},
		{"movies.xlsx", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ReaderFor(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnreadable) {
					t.Errorf("ReaderFor() error = %v, want ErrUnreadable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReaderFor() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReaderFor() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLoad_Delimited(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantTitle string
		wantGenre string
	}{
		{"csv", "movies.csv", "MovieTitle,Genre,Year,Rating,PosterURL\nHeat,Crime,1995,8.3,\n", "Heat", "Crime"},
		{"tsv", "movies.tsv", "MovieTitle\tGenre\nHeat\tCrime, Drama\n", "Heat", "Crime, Drama"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			cat, err := Load(context.Background(), path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cat.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", cat.Len())
			}
			if cat.Source != path {
				t.Errorf("Source = %q, want %q", cat.Source, path)
			}
			if m := cat.Movies[0]; m.Title != tt.wantTitle || m.Genre != tt.wantGenre {
				t.Errorf("movie = %q/%q, want %q/%q", m.Title, m.Genre, tt.wantTitle, tt.wantGenre)
			}
		})
	}
}

func TestLoad_Fatal(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		contains string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.csv") }, ""},
		{"empty file", func(t *testing.T) string { return writeFile(t, "empty.csv", "") }, "missing header"},
		{"ragged row", func(t *testing.T) string {
			return writeFile(t, "ragged.csv", "MovieTitle,Genre\nHeat,Crime,extra\n")
		}, "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.path(t))
			if !errors.Is(err, ErrUnreadable) {
				t.Fatalf("Load() error = %v, want ErrUnreadable", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestCSVReader_QuotedFields(t *testing.T) {
	table, err := CSVReader{}.ReadFrom(strings.NewReader("MovieTitle,Genre\n\"Crouching Tiger, Hidden Dragon\",\"Action, Drama\"\n"))
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	if got := table.Rows[0][0].Value; got != "Crouching Tiger, Hidden Dragon" {
		t.Errorf("title = %q", got)
	}
	if got := table.Rows[0][1].Value; got != "Action, Drama" {
		t.Errorf("genre = %q", got)
	}
}

func TestDuckDBReader_JSON(t *testing.T) {
	if testing.Short() {
		t.Skip("duckdb reader test skipped in short mode")
	}

	path := writeFile(t, "movies.json", `[
  {"MovieTitle": "Heat", "Genre": "Crime", "Year": 1995, "Rating": 8.3, "PosterURL": null},
  {"MovieTitle": "Up", "Genre": "Animation", "Year": 2009, "Rating": null, "PosterURL": "http://img/up.jpg"}
]`)

	cat, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}

	heat := cat.Movies[0]
	if heat.Title != "Heat" {
		t.Errorf("title = %q, want Heat", heat.Title)
	}
	if heat.Year == nil || *heat.Year != 1995 {
		t.Errorf("year = %v, want 1995", heat.Year)
	}
	if heat.Rating == nil || math.Abs(*heat.Rating-8.3) > 1e-9 {
		t.Errorf("rating = %v, want 8.3", heat.Rating)
	}
	if heat.PosterURL != "" {
		t.Errorf("poster = %q, want empty for null", heat.PosterURL)
	}

	up := cat.Movies[1]
	if up.Rating != nil {
		t.Errorf("Up rating = %v, want absent", *up.Rating)
	}
	if up.PosterURL != "http://img/up.jpg" {
		t.Errorf("Up poster = %q", up.PosterURL)
	}
}
