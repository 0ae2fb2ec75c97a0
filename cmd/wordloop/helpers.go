package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordloop/internal/config"
	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/inference/openai"
	"github.com/at-ishikawa/wordloop/internal/learning"
	"github.com/at-ishikawa/wordloop/internal/practice"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// learnerOrDefault returns the --learner flag value, or the configured learner.
func learnerOrDefault(cfg *config.Config, learnerID string) string {
	if learnerID != "" {
		return learnerID
	}
	return cfg.Learner.ID
}

// store holds the repositories over one database connection.
type store struct {
	db      *sqlx.DB
	items   *vocabulary.DBRepository
	records *learning.DBRepository
}

func openStore(cfg *config.Config) (*store, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}
	return &store{
		db:      db,
		items:   vocabulary.NewDBRepository(db),
		records: learning.NewDBRepository(db),
	}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

// newEngine composes the practice engine. The returned function releases the augmenter.
func newEngine(cfg *config.Config, s *store) (*practice.Engine, func()) {
	var opts []practice.Option
	closeFn := func() {}
	if cfg.OpenAI.Enabled() {
		slog.Default().Debug("question augmentation enabled", "model", cfg.OpenAI.Model)
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxRetryAttempts).
			WithTimeout(time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second)
		opts = append(opts, practice.WithAugmenter(client))
		closeFn = func() {
			_ = client.Close()
		}
	}
	engine := practice.NewEngine(cfg.Engine, s.items, s.records, practice.NewDBStore(s.db), opts...)
	return engine, closeFn
}
