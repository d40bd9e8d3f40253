package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/bakingai/bakingai/internal/bootstrap"
	"github.com/bakingai/bakingai/internal/config"
	"github.com/bakingai/bakingai/internal/logging"
	"github.com/bakingai/bakingai/internal/recipe"
	"github.com/bakingai/bakingai/internal/server"
	"github.com/bakingai/bakingai/internal/source"
)

var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "bakingai-server",
		Short:         "Baking AI recipes HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(debugMode)
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	return rootCmd
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	handler, err := newHandler(cfg, app)
	if err != nil {
		return fmt.Errorf("newHandler() > %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("starting server", "addr", srv.Addr, "source", cfg.Recipes.Source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

// newHandler builds the HTTP handler for cfg and registers the cleanup of
// what it opens with app.
func newHandler(cfg *config.Config, app *bootstrap.App) (http.Handler, error) {
	fetcher := source.NewFetcher(cfg.Remote.Timeout(), cfg.Remote.MaxRetryAttempts)
	app.AddShutdownHook(func(ctx context.Context) error {
		return fetcher.Close()
	})
	loader := recipe.NewLoader(source.NewReader(fetcher, cfg.Recipes.Sheet), cfg.Recipes.Source)

	router, err := server.NewRouter(loader, server.Options{
		DefaultLimit:   cfg.Recipes.DefaultLimit,
		AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
	})
	if err != nil {
		return nil, fmt.Errorf("server.NewRouter() > %w", err)
	}
	return h2c.NewHandler(router, &http2.Server{}), nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
