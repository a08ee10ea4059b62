// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package catalog

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/moviesense/internal/metrics"

	// Registers the "duckdb" database/sql driver.
	_ "github.com/duckdb/duckdb-go/v2"
)

// ErrUnreadable wraps every fatal loading failure: the source could not be
// opened, or it is not a table the readers understand.
var ErrUnreadable = errors.New("catalog source unreadable")

// Reader reads a tabular source into a raw Table.
type Reader interface {
	Read(ctx context.Context, path string) (Table, error)
}

// ReaderFor picks a Reader from the file extension.
func ReaderFor(path string) (Reader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return CSVReader{Comma: ','}, nil
	case ".tsv":
		return CSVReader{Comma: '\t'}, nil
	case ".parquet":
		return DuckDBReader{Function: "read_parquet"}, nil
	case ".json", ".jsonl", ".ndjson":
		return DuckDBReader{Function: "read_json_auto"}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrUnreadable, ext)
	}
}

// Load reads and normalizes the dataset at path.
func Load(ctx context.Context, path string) (*Catalog, error) {
	reader, err := ReaderFor(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	table, err := reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	metrics.RecordCatalogLoad(readerName(reader), time.Since(start))

	cat := Normalize(table)
	cat.Source = path
	return cat, nil
}

func readerName(r Reader) string {
	switch v := r.(type) {
	case DuckDBReader:
		return v.Function
	case CSVReader:
		return "csv"
	default:
		return "custom"
	}
}

// CSVReader reads delimited text. Empty cells are null, rows shorter than the
// header are padded with nulls, and rows longer than the header are rejected.
type CSVReader struct {
	Comma rune
}

// Read implements Reader.
func (r CSVReader) Read(_ context.Context, path string) (Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	return r.ReadFrom(f)
}

// ReadFrom parses delimited text from an arbitrary reader.
func (r CSVReader) ReadFrom(src io.Reader) (Table, error) {
	cr := csv.NewReader(src)
	if r.Comma != 0 {
		cr.Comma = r.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("%w: missing header row", ErrUnreadable)
		}
		return Table{}, fmt.Errorf("%w: read header: %w", ErrUnreadable, err)
	}

	table := Table{Header: header}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: line %d: %w", ErrUnreadable, line, err)
		}
		if len(record) > len(header) {
			return Table{}, fmt.Errorf("%w: line %d has %d fields, header has %d",
				ErrUnreadable, line, len(record), len(header))
		}

		row := make([]Cell, len(header))
		for i := range row {
			if i >= len(record) || record[i] == "" {
				row[i] = Cell{Null: true}
				continue
			}
			row[i] = Cell{Value: record[i]}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// DuckDBReader reads Parquet and JSON sources through an in-memory DuckDB.
// Every column is cast to VARCHAR so normalization sees the same raw text a
// CSV source would produce.
type DuckDBReader struct {
	// Function is the DuckDB table function, e.g. read_parquet.
	Function string
}

// Read implements Reader.
func (r DuckDBReader) Read(ctx context.Context, path string) (Table, error) {
	if _, err := os.Stat(path); err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return Table{}, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	source := fmt.Sprintf("%s(%s)", r.Function, quoteLiteral(path))

	columns, err := describe(ctx, db, source)
	if err != nil {
		return Table{}, fmt.Errorf("%w: describe %s: %w", ErrUnreadable, path, err)
	}
	if len(columns) == 0 {
		return Table{}, fmt.Errorf("%w: %s has no columns", ErrUnreadable, path)
	}

	casts := make([]string, len(columns))
	for i, c := range columns {
		casts[i] = fmt.Sprintf("CAST(%s AS VARCHAR)", quoteIdent(c))
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(casts, ", "), source) //nolint:gosec // identifiers and literal are quoted

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return Table{}, fmt.Errorf("%w: query %s: %w", ErrUnreadable, path, err)
	}
	defer rows.Close()

	table := Table{Header: columns}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return Table{}, fmt.Errorf("%w: scan %s: %w", ErrUnreadable, path, err)
		}

		row := make([]Cell, len(columns))
		for i, v := range values {
			row[i] = Cell{Value: v.String, Null: !v.Valid || v.String == ""}
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("%w: iterate %s: %w", ErrUnreadable, path, err)
	}

	return table, nil
}

// describe returns the column names of a table expression in source order.
func describe(ctx context.Context, db *sql.DB, source string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var names []string
	for rows.Next() {
		raw := make([]sql.RawBytes, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		// column_name is the first DESCRIBE column.
		names = append(names, string(raw[0]))
	}
	return names, rows.Err()
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
