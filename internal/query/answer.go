package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"helix/internal/corpus"
	"helix/internal/metrics"
	"helix/internal/models"
)

// Generator sends a system prompt and the user's question to a text
// generation service and returns the completion text. An empty string with a
// nil error means the service produced nothing usable.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userQuery string) (string, error)
	Name() string
}

// Producer turns a query and its assembled context into an answer.
type Producer interface {
	Answer(ctx context.Context, query, assembled string) (string, error)
	Mode() string
}

// DelegatedProducer forwards the context and query to a Generator.
type DelegatedProducer struct {
	gen    Generator
	logger *slog.Logger
}

func NewDelegatedProducer(gen Generator, logger *slog.Logger) *DelegatedProducer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DelegatedProducer{
		gen:    gen,
		logger: logger.With(slog.String("module", "producer"), slog.String("provider", gen.Name())),
	}
}

func (p *DelegatedProducer) Mode() string { return models.ModeDelegated }

// Answer is not retried. Failures are wrapped in ErrUpstream and an empty
// completion is replaced with EmptyGenerationAnswer.
func (p *DelegatedProducer) Answer(ctx context.Context, query, assembled string) (string, error) {
	text, err := p.gen.Generate(ctx, BuildSystemPrompt(assembled), query)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUpstream, p.gen.Name(), err)
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordEmptyGeneration()
		p.logger.Warn("empty generation", slog.String("fingerprint", Fingerprint(query)))
		return EmptyGenerationAnswer, nil
	}
	return text, nil
}

// LocalProducer answers from canned templates without any network call.
type LocalProducer struct {
	corpus *corpus.Corpus
	logger *slog.Logger
}

func NewLocalProducer(c *corpus.Corpus, logger *slog.Logger) *LocalProducer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalProducer{corpus: c, logger: logger.With(slog.String("module", "producer"))}
}

func (p *LocalProducer) Mode() string { return models.ModeLocal }

func (p *LocalProducer) Answer(_ context.Context, query, assembled string) (string, error) {
	p.logger.Debug("local answer",
		slog.String("fingerprint", Fingerprint(query)),
		slog.String("template", localTemplateName(query)))
	return LocalAnswer(query, assembled, p.corpus), nil
}
