// Package server exposes the recipe table over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bakingai/bakingai/internal/logging"
	"github.com/bakingai/bakingai/internal/recipe"
	"github.com/bakingai/bakingai/internal/validation"
)

//go:generate mockgen -source=router.go -destination=../mocks/server/mock_recipe_loader.go -package=mock_server

const welcomeMessage = "Welcome to Baking AI - Recipes API with Search Functionality!"

// RecipeLoader returns the current recipe table, empty when it cannot be
// loaded.
type RecipeLoader interface {
	LoadRecipes(ctx context.Context) []recipe.Record
}

type Options struct {
	// DefaultLimit is the page size when the request has no limit.
	DefaultLimit   int
	AllowedOrigins []string
	// Logger receives request logs. Nil means slog.Default().
	Logger *slog.Logger
}

// NewRouter wires up all routes with the provided RecipeLoader.
func NewRouter(loader RecipeLoader, opts Options) (http.Handler, error) {
	validate, err := validation.New("query")
	if err != nil {
		return nil, err
	}
	if opts.DefaultLimit < 1 {
		opts.DefaultLimit = recipe.DefaultLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &recipesHandler{
		loader:       loader,
		validator:    validate,
		defaultLimit: opts.DefaultLimit,
	}

	r := chi.NewRouter()
	r.Use(logging.Middleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(opts.AllowedOrigins))

	r.Get("/", handleWelcome)
	r.Get("/healthz", handleHealth)
	r.Get("/get-all-recipes", h.handleListRecipes)

	return r, nil
}

func handleWelcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(welcomeMessage)) //nolint:errcheck
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
