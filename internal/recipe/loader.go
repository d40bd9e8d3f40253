package recipe

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bakingai/bakingai/internal/ingredient"
	"github.com/bakingai/bakingai/internal/source"
)

//go:generate mockgen -source=loader.go -destination=../mocks/recipe/mock_table_reader.go -package=mock_recipe

// TableReader reads a raw table from a location.
type TableReader interface {
	Read(ctx context.Context, location string) (*source.Table, error)
}

// ErrEmptyResult means the source was read but produced no recipes.
var ErrEmptyResult = errors.New("no recipes in source")

var errMissingName = errors.New("missing recipe_name")

// Duplicate is a row dropped because an earlier row had the same normalized
// name.
type Duplicate struct {
	Line      int
	Name      string
	FirstLine int
}

// Table is the loaded recipe table plus what was dropped while building it.
type Table struct {
	Records    []Record
	Skipped    []source.RowError
	Duplicates []Duplicate
}

// Loader rebuilds the recipe table from its source on every call.
type Loader struct {
	reader   TableReader
	location string
}

// NewLoader creates a Loader reading location through reader.
func NewLoader(reader TableReader, location string) *Loader {
	return &Loader{
		reader:   reader,
		location: location,
	}
}

// Location returns the source location.
func (l *Loader) Location() string {
	return l.location
}

// Load reads and builds the table. The error wraps source.ErrSourceMissing,
// source.ErrSourceMalformed or ErrEmptyResult when one of them applies.
func (l *Loader) Load(ctx context.Context) (*Table, error) {
	raw, err := l.reader.Read(ctx, l.location)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.location, err)
	}
	table, err := Build(raw)
	if err != nil {
		return table, fmt.Errorf("build %s: %w", l.location, err)
	}
	return table, nil
}

// LoadRecipes returns the loaded records, or an empty slice when loading
// failed for any reason. The reason is only logged.
func (l *Loader) LoadRecipes(ctx context.Context) []Record {
	table, err := l.Load(ctx)
	if err != nil {
		slog.Error("failed to load recipes", "source", l.location, "error", err)
		return []Record{}
	}

	for _, skipped := range table.Skipped {
		slog.Debug("skipped recipe row", "source", l.location, "line", skipped.Line, "error", skipped.Err)
	}
	for _, dup := range table.Duplicates {
		slog.Debug("dropped duplicate recipe", "source", l.location, "line", dup.Line, "name", dup.Name, "first_line", dup.FirstLine)
	}
	return table.Records
}

// Build turns a raw table into recipe records: index columns are dropped,
// rows are deduplicated by normalized name keeping the first, and every
// surviving row gets its ingredient conversion.
func Build(raw *source.Table) (*Table, error) {
	raw.DropColumns(isIndexColumn)
	for _, column := range RequiredColumns {
		if !raw.HasColumn(column) {
			return nil, fmt.Errorf("%w: missing column %q", source.ErrSourceMalformed, column)
		}
	}

	table := &Table{
		Records: make([]Record, 0, len(raw.Rows)),
		Skipped: slices.Clone(raw.Skipped),
	}
	firstLines := make(map[string]int, len(raw.Rows))
	for _, row := range raw.Rows {
		name, ok := row.Get(ColumnRecipeName)
		if !ok {
			table.Skipped = append(table.Skipped, source.RowError{Line: row.Line, Err: errMissingName})
			continue
		}

		key := NormalizeName(name)
		if first, seen := firstLines[key]; seen {
			table.Duplicates = append(table.Duplicates, Duplicate{Line: row.Line, Name: name, FirstLine: first})
			continue
		}
		firstLines[key] = row.Line
		table.Records = append(table.Records, newRecord(name, row))
	}
	slices.SortStableFunc(table.Skipped, func(a, b source.RowError) int {
		return cmp.Compare(a.Line, b.Line)
	})

	if len(table.Records) == 0 {
		return table, ErrEmptyResult
	}
	return table, nil
}

func newRecord(name string, row source.Row) Record {
	ingredients, _ := row.Get(ColumnIngredients)
	conversion := ingredient.Convert(ingredients)

	return Record{
		Name:                 name,
		ImageURL:             valueOrNotAvailable(row, ColumnImage),
		CookTime:             valueOrNotAvailable(row, ColumnCookTime),
		PrepTime:             valueOrNotAvailable(row, ColumnPrepTime),
		TotalTime:            valueOrNotAvailable(row, ColumnTotalTime),
		Ingredients:          ingredients,
		Directions:           valueOrNotAvailable(row, ColumnDirections),
		ConvertedIngredients: conversion.ConvertedValues,
		TotalGrams:           conversion.TotalGrams,
	}
}

func valueOrNotAvailable(row source.Row, column string) string {
	if v, ok := row.Get(column); ok {
		return v
	}
	return ingredient.NotAvailable
}

// isIndexColumn matches the unnamed index column left behind when a table
// was saved together with its row index.
func isIndexColumn(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || strings.HasPrefix(name, "Unnamed:")
}
