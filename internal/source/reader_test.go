package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		location string
		want     Format
	}{
		{location: "recipes.csv", want: FormatCSV},
		{location: "data/recipes.XLSX", want: FormatXLSX},
		{location: "recipes", want: FormatCSV},
		{location: "https://example.com/exports/recipes.xlsx?version=2", want: FormatXLSX},
		{location: "https://example.com/recipes.csv", want: FormatCSV},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.location))
		})
	}
}

func TestReader_Read_LocalFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "recipes.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("recipe_name,ingredients\nBread,1 cup flour\n"), 0644))

	xlsxPath := filepath.Join(dir, "recipes.xlsx")
	buf := newWorkbook(t, "Sheet1", map[string]any{"A1": "recipe_name", "A2": "Cake"})
	require.NoError(t, os.WriteFile(xlsxPath, buf.Bytes(), 0644))

	tests := []struct {
		name      string
		location  string
		wantName  string
		wantErrIs error
	}{
		{
			name:     "csv file",
			location: csvPath,
			wantName: "Bread",
		},
		{
			name:     "xlsx file",
			location: xlsxPath,
			wantName: "Cake",
		},
		{
			name:      "missing file",
			location:  filepath.Join(dir, "nope.csv"),
			wantErrIs: ErrSourceMissing,
		},
		{
			name:      "directory",
			location:  dir,
			wantErrIs: ErrSourceMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewReader(nil, "").Read(context.Background(), tt.location)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			require.Len(t, got.Rows, 1)
			name, _ := got.Rows[0].Get("recipe_name")
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestReader_Read_URL(t *testing.T) {
	workbook := newWorkbook(t, "Sheet1", map[string]any{"A1": "recipe_name", "A2": "Muffins"})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes.csv":
			_, _ = w.Write([]byte("recipe_name\nBrownies\n"))
		case "/recipes.xlsx":
			_, _ = w.Write(workbook.Bytes())
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(time.Second, 0)
	defer func() {
		_ = fetcher.Close()
	}()
	reader := NewReader(fetcher, "")

	got, err := reader.Read(context.Background(), server.URL+"/recipes.csv")
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	name, _ := got.Rows[0].Get("recipe_name")
	assert.Equal(t, "Brownies", name)

	got, err = reader.Read(context.Background(), server.URL+"/recipes.xlsx")
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	name, _ = got.Rows[0].Get("recipe_name")
	assert.Equal(t, "Muffins", name)

	_, err = reader.Read(context.Background(), server.URL+"/other.csv")
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestReader_Read_URLWithoutFetcher(t *testing.T) {
	_, err := NewReader(nil, "").Read(context.Background(), "https://example.com/recipes.csv")
	assert.Error(t, err)
}
