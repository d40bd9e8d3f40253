package main

import (
	"fmt"

	"github.com/bakingai/bakingai/internal/config"
	"github.com/bakingai/bakingai/internal/recipe"
	"github.com/bakingai/bakingai/internal/source"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newRecipeLoader returns a loader for the configured source and a function
// releasing its HTTP client.
func newRecipeLoader(cfg *config.Config) (*recipe.Loader, func() error) {
	fetcher := source.NewFetcher(cfg.Remote.Timeout(), cfg.Remote.MaxRetryAttempts)
	reader := source.NewReader(fetcher, cfg.Recipes.Sheet)
	return recipe.NewLoader(reader, cfg.Recipes.Source), fetcher.Close
}
