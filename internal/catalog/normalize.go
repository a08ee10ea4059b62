// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cell is one raw value from a source table. Null marks a missing or empty cell.
type Cell struct {
	Value string
	Null  bool
}

// Table is a raw, untyped dataset as produced by a Reader.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// WarningKind classifies a recovered normalization problem.
type WarningKind int

const (
	// MissingColumn means a required column was absent from the source.
	MissingColumn WarningKind = iota
	// UnparseableValue means a numeric cell could not be parsed.
	UnparseableValue
)

// String returns the snake_case name used in logs and metrics.
func (k WarningKind) String() string {
	switch k {
	case MissingColumn:
		return "missing_column"
	case UnparseableValue:
		return "unparseable_value"
	default:
		return "unknown"
	}
}

// Warning describes one recovered condition. Row is -1 for column-level warnings.
type Warning struct {
	Kind   WarningKind
	Column string
	Row    int
	Value  string
}

func (w Warning) String() string {
	if w.Row < 0 {
		return fmt.Sprintf("%s: %s", w.Kind, w.Column)
	}
	return fmt.Sprintf("%s: %s row %d (%q)", w.Kind, w.Column, w.Row, w.Value)
}

// columnIndex maps trimmed header names to positions; the first duplicate wins.
type columnIndex map[string]int

func indexHeader(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// cell returns the value of column name in row, or ok=false when the column
// is missing, the row is short, or the cell is null.
func (ci columnIndex) cell(row []Cell, name string) (string, bool) {
	pos, ok := ci[name]
	if !ok || pos >= len(row) || row[pos].Null {
		return "", false
	}
	return row[pos].Value, true
}

// Normalize maps a raw table onto typed movies. It never fails: missing
// columns and unparseable numbers become absent fields and are reported in
// Catalog.Warnings.
func Normalize(t Table) *Catalog {
	cols := indexHeader(t.Header)
	cat := &Catalog{Movies: make([]Movie, 0, len(t.Rows))}

	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			cat.Warnings = append(cat.Warnings, Warning{Kind: MissingColumn, Column: name, Row: -1})
		}
	}
	_, cat.HasOverview = cols[ColumnOverview]

	for r, row := range t.Rows {
		m := Movie{Index: r}

		if v, ok := cols.cell(row, ColumnTitle); ok {
			m.Title = strings.TrimSpace(v)
		}
		if v, ok := cols.cell(row, ColumnGenre); ok {
			m.Genre = strings.TrimSpace(v)
		}
		if v, ok := cols.cell(row, ColumnPosterURL); ok {
			m.PosterURL = strings.TrimSpace(v)
		}
		if v, ok := cols.cell(row, ColumnOverview); ok {
			m.Overview = v
		}

		if v, ok := cols.cell(row, ColumnYear); ok {
			if year, parsed := parseYear(v); parsed {
				m.Year = &year
			} else if strings.TrimSpace(v) != "" {
				cat.Warnings = append(cat.Warnings, Warning{Kind: UnparseableValue, Column: ColumnYear, Row: r, Value: v})
			}
		}
		if v, ok := cols.cell(row, ColumnRating); ok {
			if rating, parsed := parseRating(v); parsed {
				m.Rating = &rating
				m.RatingRaw = strings.TrimSpace(v)
			} else if strings.TrimSpace(v) != "" {
				cat.Warnings = append(cat.Warnings, Warning{Kind: UnparseableValue, Column: ColumnRating, Row: r, Value: v})
			}
		}

		m.Combined = combine(&m, cat.HasOverview)
		cat.Movies = append(cat.Movies, m)
	}

	return cat
}

// parseYear accepts integers and integral floats such as "1999.0", which is
// how years come back from sources that stored the column as a float.
func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// parseRating accepts any finite float; NaN and infinities count as absent.
func parseRating(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
