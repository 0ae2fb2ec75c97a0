package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wordloop/internal/bootstrap"
	"github.com/at-ishikawa/wordloop/internal/config"
	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/game"
	"github.com/at-ishikawa/wordloop/internal/inference/openai"
	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/practice"
	"github.com/at-ishikawa/wordloop/internal/server"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

var configFile string

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error: godotenv.Load() > %v\n", err)
		os.Exit(1)
	}

	var migrate bool
	rootCmd := &cobra.Command{
		Use:           "wordloop-server",
		Short:         "wordloop practice service HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), migrate)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, migrate bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	app := bootstrap.New().
		WithShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddCloser(db)
	if migrate {
		applied, err := database.Migrate(ctx, db)
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("database.Migrate() > %w", err)
		}
		slog.Default().Info("applied migrations", "versions", applied)
	}

	var opts []practice.Option
	if cfg.OpenAI.Enabled() {
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxRetryAttempts).
			WithTimeout(time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second)
		app.AddCloser(client)
		opts = append(opts, practice.WithAugmenter(client))
		slog.Default().Info("question augmentation enabled", "model", client.GetModel())
	}

	engine := practice.NewEngine(
		cfg.Engine,
		vocabulary.NewDBRepository(db),
		learning.NewDBRepository(db),
		practice.NewDBStore(db),
		opts...,
	)
	scorer := game.NewScorer(cfg.Games.Bundles())
	tracker := game.NewTracker(scorer).
		WithSessionTTL(time.Duration(cfg.Games.SessionTTLMinutes) * time.Minute)
	handler := server.NewHandler(engine, scorer, tracker, server.Options{
		AllowedOrigins:    cfg.Server.CORS.AllowedOrigins,
		RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
		Burst:             cfg.Server.RateLimit.Burst,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler.Routes(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
