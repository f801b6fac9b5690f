// Package llm implements text generation clients for delegated answers.
package llm

import (
	"fmt"
	"log/slog"
	"time"

	"helix/internal/config"
	"helix/internal/corpus"
	"helix/internal/query"
)

// Request constants shared by every provider.
const (
	DefaultTemperature float32 = 0.3
	DefaultMaxTokens           = 1500
	DefaultTimeout             = 30 * time.Second
)

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// New returns the generator selected by cfg. It returns nil when delegation
// is disabled, in which case answers come from local templates.
func New(cfg *config.Config, logger *slog.Logger) (query.Generator, error) {
	if !cfg.DelegationEnabled() {
		return nil, nil
	}
	timeout := cfg.LLMTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	switch cfg.LLMProvider {
	case ProviderOllama:
		o, err := NewOllama(cfg.OllamaHost, cfg.OllamaModel, timeout, logger)
		if err != nil {
			return nil, err
		}
		return o, nil
	case ProviderOpenAI, "":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

// NewProducer picks the delegated producer when a generator is configured
// and the local template producer otherwise.
func NewProducer(gen query.Generator, c *corpus.Corpus, logger *slog.Logger) query.Producer {
	if gen == nil {
		return query.NewLocalProducer(c, logger)
	}
	return query.NewDelegatedProducer(gen, logger)
}
