// Package csvio reads header-first CSV exports into string-typed tables.
// All values stay raw text; type coercion belongs to the loaders so that a
// bad cell can fail its own row instead of the whole file.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row maps a normalized header name to the raw cell text of one CSV line.
type Row map[string]string

// Get returns the raw cell value, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Table is an in-memory CSV file: normalized headers plus raw string rows.
type Table struct {
	Headers []string
	Rows    []Row
}

// Options controls header normalization while reading.
type Options struct {
	TrimHeaders  bool
	LowerHeaders bool
}

// ReadFile loads an entire UTF-8, comma-delimited, header-first CSV file.
// Ragged rows are tolerated: extra cells are dropped, missing cells read as "".
func ReadFile(path string, opts Options) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("CSV 파일 열기 실패: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV 헤더 읽기 실패: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			// 엑셀 계열에서 내보낸 파일은 BOM을 달고 온다
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		headers[i] = normalizeHeader(h, opts)
	}

	table := &Table{Headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV 행 읽기 실패: %w", err)
		}

		row := make(Row, len(headers))
		for i, name := range headers {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// Has reports whether the table carries the given column.
func (t *Table) Has(column string) bool {
	for _, h := range t.Headers {
		if h == column {
			return true
		}
	}
	return false
}

// EnsureColumns synthesizes any missing column as empty-valued so later
// renames and lookups never fail on an absent key.
func (t *Table) EnsureColumns(columns ...string) {
	for _, column := range columns {
		if t.Has(column) {
			continue
		}
		t.Headers = append(t.Headers, column)
		for _, row := range t.Rows {
			row[column] = ""
		}
	}
}

// Rename maps source column names to canonical field names. Columns absent
// from the mapping keep their name.
func (t *Table) Rename(mapping map[string]string) {
	for i, h := range t.Headers {
		renamed, ok := mapping[h]
		if !ok {
			continue
		}
		t.Headers[i] = renamed
		for _, row := range t.Rows {
			row[renamed] = row[h]
			delete(row, h)
		}
	}
}

func normalizeHeader(h string, opts Options) string {
	if opts.TrimHeaders {
		h = strings.TrimSpace(h)
	}
	if opts.LowerHeaders {
		h = strings.ToLower(h)
	}
	return h
}
