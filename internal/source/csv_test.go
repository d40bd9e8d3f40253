package source

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantColumns []string
		wantLines   []int
		wantSkipped []int
	}{
		{
			name:        "header and rows",
			input:       "recipe_name,ingredients\nBread,1 cup flour\nCake,2 cups sugar\n",
			wantColumns: []string{"recipe_name", "ingredients"},
			wantLines:   []int{2, 3},
		},
		{
			name:        "row with too many fields is skipped",
			input:       "recipe_name,ingredients\nBread,1 cup flour,extra\nCake,2 cups sugar\n",
			wantColumns: []string{"recipe_name", "ingredients"},
			wantLines:   []int{3},
			wantSkipped: []int{2},
		},
		{
			name:        "bare quote is skipped and reading continues",
			input:       "recipe_name,ingredients\nBr\"ead,flour\nCake,sugar\n",
			wantColumns: []string{"recipe_name", "ingredients"},
			wantLines:   []int{3},
			wantSkipped: []int{2},
		},
		{
			name:        "quoted field spanning lines",
			input:       "recipe_name,ingredients\nBread,\"1 cup flour\n2 tsp salt\"\nCake,sugar\n",
			wantColumns: []string{"recipe_name", "ingredients"},
			wantLines:   []int{2, 4},
		},
		{
			name:        "blank lines are ignored",
			input:       "recipe_name,ingredients\n\nBread,flour\n\n",
			wantColumns: []string{"recipe_name", "ingredients"},
			wantLines:   []int{3},
		},
		{
			name:        "byte order mark is removed from the header",
			input:       "\ufeffrecipe_name,ingredients\nBread,flour\n",
			wantColumns: []string{"recipe_name", "ingredients"},
			wantLines:   []int{2},
		},
		{
			name:        "invalid UTF-8 row is skipped",
			input:       "recipe_name,ingredients\nBr\xffead,flour\nCake,sugar\n",
			wantColumns: []string{"recipe_name", "ingredients"},
			wantLines:   []int{3},
			wantSkipped: []int{2},
		},
		{
			name:        "header only",
			input:       "recipe_name,ingredients\n",
			wantColumns: []string{"recipe_name", "ingredients"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.wantColumns, got.Columns)

			var lines []int
			for _, row := range got.Rows {
				lines = append(lines, row.Line)
			}
			assert.Equal(t, tt.wantLines, lines)

			var skipped []int
			for _, rowErr := range got.Skipped {
				skipped = append(skipped, rowErr.Line)
			}
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestParseCSV_Cells(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("recipe_name,cook_time,prep_time\nBread,,10 mins\nCake\n"))
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)

	name, ok := got.Rows[0].Get("recipe_name")
	assert.True(t, ok)
	assert.Equal(t, "Bread", name)

	_, ok = got.Rows[0].Get("cook_time")
	assert.False(t, ok, "empty cell is missing")

	prep, ok := got.Rows[0].Get("prep_time")
	assert.True(t, ok)
	assert.Equal(t, "10 mins", prep)

	_, ok = got.Rows[1].Get("prep_time")
	assert.False(t, ok, "short row leaves trailing columns missing")
}

func TestParseCSV_Errors(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrSourceMalformed)

	_, err = ParseCSV(strings.NewReader("recipe\"_name,x\n"))
	assert.ErrorIs(t, err, ErrSourceMalformed)
}

func TestParseCSV_SkippedReason(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("a,b\n\"x\"y,z\n"))
	require.NoError(t, err)
	require.Len(t, got.Skipped, 1)
	assert.ErrorIs(t, got.Skipped[0], csv.ErrQuote)
	assert.Contains(t, got.Skipped[0].Error(), "line 2")
}

func TestTable_DropColumns(t *testing.T) {
	got, err := ParseCSV(strings.NewReader(",recipe_name\n0,Bread\n1,Cake\n"))
	require.NoError(t, err)

	dropped := got.DropColumns(func(name string) bool { return name == "" })
	assert.Equal(t, []string{""}, dropped)
	assert.Equal(t, []string{"recipe_name"}, got.Columns)
	assert.False(t, got.HasColumn(""))

	_, ok := got.Rows[0].Get("")
	assert.False(t, ok)

	assert.Nil(t, got.DropColumns(func(string) bool { return false }))
}
