// Package bootstrap wires configuration into a ready query service for the
// server and the command-line client.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"helix/internal/config"
	"helix/internal/corpus"
	"helix/internal/db"
	"helix/internal/llm"
	"helix/internal/query"
)

// LoadCorpus returns the corpus named by CORPUS_DATABASE_URL, or the
// built-in corpus when it is unset. The returned database is nil for the
// built-in corpus; otherwise the caller closes it.
func LoadCorpus(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*corpus.Corpus, *db.DB, error) {
	if cfg.CorpusDatabaseURL == "" {
		c := corpus.Default()
		logger.Info("using built-in corpus",
			slog.Int("records", c.RecordCount()),
			slog.Int("targets", c.TargetCount()))
		return c, nil, nil
	}

	database, err := db.New(ctx, cfg.CorpusDatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect corpus database: %w", err)
	}
	if err := database.RunMigrations(cfg.CorpusDatabaseURL); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("migrate corpus database: %w", err)
	}

	c, err := database.LoadCorpus(ctx)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	logger.Info("loaded corpus from database",
		slog.Int("records", c.RecordCount()),
		slog.Int("targets", c.TargetCount()))
	return c, database, nil
}

// NewService selects the answer producer once from cfg and returns the query
// service over c.
func NewService(cfg *config.Config, c *corpus.Corpus, logger *slog.Logger) (*query.Service, error) {
	gen, err := llm.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	producer := llm.NewProducer(gen, c, logger)
	if gen != nil {
		logger.Info("answers delegated", slog.String("provider", gen.Name()))
	} else {
		logger.Info("answers from local templates", slog.String("reason", "no "+cfg.LLMProvider+" credential configured"))
	}

	return query.NewService(c, producer, cfg.RecordLimit, logger), nil
}
