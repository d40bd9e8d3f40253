package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakingai/bakingai/internal/export"
	"github.com/bakingai/bakingai/internal/testutil"
)

func TestRecipesListCommand(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := testutil.WriteRecipesCSV(t, tmpDir, testutil.SampleRecipeRows(45)...)
	cfgPath := testutil.SetupTestConfig(t, tmpDir, csvPath)

	tests := []struct {
		name        string
		args        []string
		want        []string
		wantMissing []string
		wantErr     string
	}{
		{
			name:        "last page",
			args:        []string{"--page", "3", "--limit", "20"},
			want:        []string{"NAME", "Recipe 041", "Recipe 045", "240.0", "Page 3 of 3 (45 recipes)"},
			wantMissing: []string{"Recipe 040"},
		},
		{
			name: "default limit from config",
			args: nil,
			want: []string{"Recipe 001", "Recipe 020", "Page 1 of 3 (45 recipes)"},
		},
		{
			name: "search",
			args: []string{"--search", "recipe 01"},
			want: []string{"Recipe 010", "Recipe 019", "Page 1 of 1 (10 recipes)"},
		},
		{
			name: "page past the end",
			args: []string{"--page", "9"},
			want: []string{"No recipes on page 9 (45 matching recipes)"},
		},
		{
			name:    "invalid page",
			args:    []string{"--page", "0"},
			wantErr: "--page must be 1 or greater",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", cfgPath, "recipes", "list"}, tt.args...)
			out, err := executeCommand(t, nil, args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, out, missing)
			}
		})
	}
}

func TestRecipesValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		missing bool
		args    []string
		want    []string
		wantErr string
	}{
		{
			name: "skipped and duplicate rows",
			rows: []string{
				"Banana Bread,2 cups flour,,,,,",
				" banana bread ,1 cup flour,,,,,",
				",1 cup flour,,,,,",
				"Cake,1 cup sugar,,,,,",
			},
			want: []string{
				"Skipped rows (1):",
				"line 4: missing recipe_name",
				"Duplicate recipes dropped (1):",
				`line 3: " banana bread " duplicates line 2`,
				"2 recipe(s) loaded, 1 row(s) skipped, 1 duplicate(s) dropped",
			},
		},
		{
			name: "strict fails on skipped rows",
			rows: []string{
				",1 cup flour,,,,,",
				"Cake,1 cup sugar,,,,,",
			},
			args:    []string{"--strict"},
			wantErr: "validation failed with 1 skipped row(s)",
		},
		{
			name:    "missing source",
			missing: true,
			want:    []string{"Failed: recipe source not found"},
			wantErr: "validation failed: recipe source not found",
		},
		{
			name:    "no recipes",
			rows:    nil,
			want:    []string{"Failed: recipe source has no recipes"},
			wantErr: "validation failed: recipe source has no recipes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			csvPath := filepath.Join(tmpDir, "missing.csv")
			if !tt.missing {
				csvPath = testutil.WriteRecipesCSV(t, tmpDir, tt.rows...)
			}
			cfgPath := testutil.SetupTestConfig(t, tmpDir, csvPath)

			args := append([]string{"--config", cfgPath, "recipes", "validate"}, tt.args...)
			out, err := executeCommand(t, nil, args...)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRecipesExportCommand(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := testutil.WriteRecipesCSV(t, tmpDir,
		"Sugar Cookies,\"1 cup sugar, 2 tbsp butter\",,12 mins,,,Bake.",
		"Banana Bread,2 cups flour,,,,,",
	)
	cfgPath := testutil.SetupTestConfig(t, tmpDir, csvPath)

	t.Run("yaml to standard output", func(t *testing.T) {
		out, err := executeCommand(t, nil, "--config", cfgPath, "recipes", "export", "--format", "yaml", "--output", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "- recipe_name: Banana Bread\n")
		assert.Contains(t, out, "total_grams: 270\n")
		assert.Less(t, strings.Index(out, "Banana Bread"), strings.Index(out, "Sugar Cookies"))
	})

	t.Run("json to the output directory", func(t *testing.T) {
		out, err := executeCommand(t, nil, "--config", cfgPath, "recipes", "export")
		require.NoError(t, err)
		assert.Contains(t, out, "Exported 2 recipe(s) to ")

		content, err := os.ReadFile(filepath.Join(tmpDir, "outputs", export.FormatJSON.DefaultFileName()))
		require.NoError(t, err)
		assert.Contains(t, string(content), `"recipe_name": "Sugar Cookies"`)
	})

	t.Run("markdown with search to a file", func(t *testing.T) {
		outPath := filepath.Join(tmpDir, "cards", "bread.md")
		_, err := executeCommand(t, nil, "--config", cfgPath, "recipes", "export", "--format", "md", "--search", "bread", "-o", outPath)
		require.NoError(t, err)

		content, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "## Banana Bread")
		assert.NotContains(t, string(content), "Sugar Cookies")
	})

	t.Run("pdf cannot go to standard output", func(t *testing.T) {
		_, err := executeCommand(t, nil, "--config", cfgPath, "recipes", "export", "--format", "pdf", "--output", "-")
		assert.ErrorIs(t, err, export.ErrNeedsFile)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := executeCommand(t, nil, "--config", cfgPath, "recipes", "export", "--format", "csv")
		assert.ErrorContains(t, err, `unsupported format "csv"`)
	})
}

func TestFormatFlag(t *testing.T) {
	f := formatFlag{format: export.FormatJSON}
	assert.Equal(t, "json", f.String())
	assert.Equal(t, "format", f.Type())

	require.NoError(t, f.Set("YML"))
	assert.Equal(t, export.FormatYAML, f.format)
	assert.Error(t, f.Set("docx"))
	assert.Equal(t, export.FormatYAML, f.format)
}
