// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package recommend

import (
	"bytes"
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/moviesense/internal/catalog"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{Title: "Heat", Genre: "Action, Crime", Year: intPtr(1995), Rating: floatPtr(8), PosterURL: "http://p/heat.jpg", ratingRaw: "8.0"},
		{Title: "Unknown"},
		{Title: "Plain", Rating: floatPtr(7.25)},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "MovieTitle,Genre,Year,Rating,PosterURL\n" +
		"Heat,\"Action, Crime\",1995,8.0,http://p/heat.jpg\n" +
		"Unknown,,,,\n" +
		"Plain,,,7.25,\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteCSV_RoundTripHeader(t *testing.T) {
	e := newTestEngine(t, testMovies(), nil)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, e.ListAll()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !reflect.DeepEqual(rows[0], catalog.RequiredColumns) {
		t.Errorf("header = %v, want %v", rows[0], catalog.RequiredColumns)
	}
	if len(rows)-1 != e.Stats().UniqueTitles {
		t.Errorf("exported %d rows, want %d", len(rows)-1, e.Stats().UniqueTitles)
	}

	reloaded, err := catalog.CSVReader{Comma: ','}.ReadFrom(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-reading export: %v", err)
	}
	cat := catalog.Normalize(reloaded)
	if len(cat.Warnings) != 0 {
		t.Errorf("re-read export produced warnings: %v", cat.Warnings)
	}
}

func TestWriteCSV_WriterError(t *testing.T) {
	if err := WriteCSV(failingWriter{}, []Result{{Title: "Heat"}}); err == nil {
		t.Error("WriteCSV() expected error from failing writer")
	}
}
