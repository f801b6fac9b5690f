package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"helix/internal/corpus"
	"helix/internal/metrics"
	"helix/internal/models"
	"helix/internal/validation"
)

// Service routes queries against a read-only corpus. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	corpus      *corpus.Corpus
	producer    Producer
	recordLimit int
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates a query service. A non-positive recordLimit means
// DefaultRecordLimit.
func NewService(c *corpus.Corpus, p Producer, recordLimit int, logger *slog.Logger) *Service {
	if recordLimit <= 0 {
		recordLimit = DefaultRecordLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		corpus:      c,
		producer:    p,
		recordLimit: recordLimit,
		logger:      logger.With(slog.String("module", "query")),
		now:         time.Now,
	}
}

// Corpus returns the corpus the service answers from.
func (s *Service) Corpus() *corpus.Corpus { return s.corpus }

// Mode reports how answers are produced.
func (s *Service) Mode() string { return s.producer.Mode() }

// Handle answers one query. Invalid input is rejected with ErrInvalidQuery
// before any context is assembled. Upstream failures are returned wrapped in
// ErrUpstream with no partial result.
func (s *Service) Handle(ctx context.Context, q string) (*models.QueryResult, error) {
	start := s.now()
	mode := s.producer.Mode()

	if ok, msg := validation.ValidateQuery(q); !ok {
		metrics.RecordQuery(mode, "invalid", time.Since(start))
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, msg)
	}

	fp := Fingerprint(q)
	assembly := Assemble(q, s.corpus)
	metrics.RecordSections(assembly.Sections)

	answer, err := s.producer.Answer(ctx, q, assembly.Text)
	if err != nil {
		metrics.RecordQuery(mode, "error", time.Since(start))
		s.logger.Error("answer failed",
			slog.String("fingerprint", fp),
			slog.String("mode", mode),
			slog.Any("error", err))
		if !errors.Is(err, ErrUpstream) {
			err = fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		return nil, err
	}

	records := FilterRelevant(q, s.corpus, s.recordLimit)

	metrics.RecordQuery(mode, "ok", time.Since(start))
	s.logger.Info("query answered",
		slog.String("fingerprint", fp),
		slog.String("mode", mode),
		slog.Any("sections", assembly.Sections),
		slog.Int("records", len(records)),
		slog.Duration("elapsed", time.Since(start)))

	return &models.QueryResult{
		ID:           uuid.New(),
		Query:        q,
		Answer:       answer,
		Context:      assembly.Text,
		Records:      records,
		TotalRecords: s.corpus.RecordCount(),
		TotalTargets: s.corpus.TargetCount(),
		Mode:         mode,
		GeneratedAt:  s.now().UTC(),
	}, nil
}
