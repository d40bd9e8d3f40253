// Package testutil provides shared test helpers for creating config files and recipe fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RecipesHeader is the header row of a recipe CSV fixture.
const RecipesHeader = "recipe_name,ingredients,img_src,cook_time,prep_time,total_time,directions"

// WriteRecipesCSV writes a recipe CSV fixture with RecipesHeader followed by rows.
// Returns the path to the generated file.
func WriteRecipesCSV(t *testing.T, tmpDir string, rows ...string) string {
	t.Helper()

	lines := append([]string{RecipesHeader}, rows...)
	path := filepath.Join(tmpDir, "recipes.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

// SampleRecipeRows returns n distinct recipe rows named "Recipe 001" and so on,
// each with one cup of flour.
func SampleRecipeRows(n int) []string {
	rows := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, fmt.Sprintf("Recipe %03d,1 cup flour,https://example.com/%d.jpg,10 mins,5 mins,15 mins,Mix and bake.", i, i))
	}
	return rows
}

// SetupTestConfig creates a minimal config file pointing at recipesPath and
// an output directory under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, recipesPath string) string {
	t.Helper()

	outputDir := filepath.Join(tmpDir, "outputs")
	require.NoError(t, os.MkdirAll(outputDir, 0755))

	configContent := fmt.Sprintf(`server:
  port: 18080
recipes:
  source: %s
  default_limit: 20
export:
  output_directory: %s
`,
		recipesPath,
		outputDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
