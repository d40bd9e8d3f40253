package export

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/bakingai/bakingai/internal/ingredient"
	"github.com/bakingai/bakingai/internal/recipe"
)

const fallbackCardsTemplateName = "recipe-cards.md.go.tmpl"

//go:embed templates/recipe-cards.md.go.tmpl
var fallbackCardsTemplate string

// CardsTemplate is the top-level data structure for recipe card templates
type CardsTemplate struct {
	Recipes    []Card
	ShowImages bool
}

// Card is one recipe prepared for template rendering. Fields that had no
// value in the source are empty, except the time fields which keep "N/A".
type Card struct {
	Name                 string
	Image                string
	CookTime             string
	PrepTime             string
	TotalTime            string
	Ingredients          string
	ConvertedIngredients []string
	TotalGrams           string
	Directions           string
}

func newCard(r recipe.Record) Card {
	totalGrams := ingredient.NotAvailable
	if r.TotalGrams.Available() {
		totalGrams = r.TotalGrams.String() + "g"
	}
	return Card{
		Name:                 r.Name,
		Image:                omitNotAvailable(r.ImageURL),
		CookTime:             r.CookTime,
		PrepTime:             r.PrepTime,
		TotalTime:            r.TotalTime,
		Ingredients:          r.Ingredients,
		ConvertedIngredients: r.ConvertedIngredients,
		TotalGrams:           totalGrams,
		Directions:           omitNotAvailable(r.Directions),
	}
}

func omitNotAvailable(s string) string {
	if s == ingredient.NotAvailable {
		return ""
	}
	return s
}

// WriteCards renders records as markdown cards with the template at
// templatePath, or the embedded template when templatePath is empty or
// cannot be parsed.
func WriteCards(output io.Writer, templatePath string, records []recipe.Record, showImages bool) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackCardsTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}

	data := CardsTemplate{
		Recipes:    make([]Card, 0, len(records)),
		ShowImages: showImages,
	}
	for _, r := range records {
		data.Recipes = append(data.Recipes, newCard(r))
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func parseTemplateWithFallback(templatePath string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackCardsTemplateName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
