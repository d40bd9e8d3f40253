// Package recipe loads the recipe table and answers list queries over it.
package recipe

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bakingai/bakingai/internal/ingredient"
)

// Source column names.
const (
	ColumnRecipeName  = "recipe_name"
	ColumnIngredients = "ingredients"
	ColumnImage       = "img_src"
	ColumnCookTime    = "cook_time"
	ColumnPrepTime    = "prep_time"
	ColumnTotalTime   = "total_time"
	ColumnDirections  = "directions"
)

// RequiredColumns must all be present in the source header.
var RequiredColumns = []string{
	ColumnRecipeName,
	ColumnIngredients,
	ColumnImage,
	ColumnCookTime,
	ColumnPrepTime,
	ColumnTotalTime,
	ColumnDirections,
}

// Record is one recipe after loading. Every scalar field other than
// Ingredients holds ingredient.NotAvailable when the source had no value.
type Record struct {
	Name                 string           `json:"recipe_name" yaml:"recipe_name"`
	ImageURL             string           `json:"img_src" yaml:"img_src"`
	CookTime             string           `json:"cook_time" yaml:"cook_time"`
	PrepTime             string           `json:"prep_time" yaml:"prep_time"`
	TotalTime            string           `json:"total_time" yaml:"total_time"`
	Ingredients          string           `json:"ingredients" yaml:"ingredients"`
	Directions           string           `json:"directions" yaml:"directions"`
	ConvertedIngredients []string         `json:"converted_ingredients" yaml:"converted_ingredients"`
	TotalGrams           ingredient.Grams `json:"total_grams" yaml:"total_grams"`
}

// NormalizeName returns the key used to detect duplicate recipes.
func NormalizeName(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}
