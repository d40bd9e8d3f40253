// Package source reads raw recipe tables from CSV files, spreadsheets, and
// HTTP URLs.
package source

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrSourceMissing means there is nothing at the source location.
	ErrSourceMissing = errors.New("recipe source not found")
	// ErrSourceMalformed means the source exists but is not a readable table.
	ErrSourceMalformed = errors.New("recipe source malformed")
)

// RowError describes a row that was skipped while reading a table.
type RowError struct {
	// Line is the 1-based line (or spreadsheet row) the record starts on.
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Row is one parsed record. Empty cells are treated as missing.
type Row struct {
	Line  int
	cells map[string]string
}

// Get returns the cell under column, and false when it is missing or empty.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.cells[column]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Table is a header plus the rows that could be read.
type Table struct {
	Columns []string
	Rows    []Row
	// Skipped lists rows dropped while reading, in source order.
	Skipped []RowError
}

func newTable(header []string) *Table {
	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[i] = name
	}
	return &Table{Columns: columns}
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// DropColumns removes every column for which drop returns true.
func (t *Table) DropColumns(drop func(name string) bool) []string {
	var dropped []string
	kept := t.Columns[:0:0]
	for _, name := range t.Columns {
		if drop(name) {
			dropped = append(dropped, name)
			continue
		}
		kept = append(kept, name)
	}
	if len(dropped) == 0 {
		return nil
	}
	t.Columns = kept
	for _, row := range t.Rows {
		for _, name := range dropped {
			delete(row.cells, name)
		}
	}
	return dropped
}

// appendRecord adds a record; records wider than the header are skipped.
// Short records leave the trailing columns missing.
func (t *Table) appendRecord(line int, record []string) {
	if len(record) > len(t.Columns) {
		t.skip(line, fmt.Errorf("expected %d fields, saw %d", len(t.Columns), len(record)))
		return
	}
	cells := make(map[string]string, len(record))
	for i, value := range record {
		cells[t.Columns[i]] = value
	}
	t.Rows = append(t.Rows, Row{Line: line, cells: cells})
}

func (t *Table) skip(line int, err error) {
	t.Skipped = append(t.Skipped, RowError{Line: line, Err: err})
}
