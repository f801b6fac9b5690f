package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"helix/internal/metrics"
	"helix/internal/validation"
)

// Ollama generates answers through a local Ollama server.
type Ollama struct {
	host    string
	model   string
	timeout time.Duration

	client *api.Client
	logger *slog.Logger
}

// NewOllama creates a client for the server at host.
func NewOllama(host, model string, timeout time.Duration, logger *slog.Logger) (*Ollama, error) {
	if ok, msg := validation.ValidateURL(host); !ok {
		return nil, fmt.Errorf("invalid ollama host %q: %s", host, msg)
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Ollama{
		host:    host,
		model:   model,
		timeout: timeout,
		client:  api.NewClient(u, &http.Client{Timeout: timeout}),
		logger:  logger.With(slog.String("module", "ollama")),
	}, nil
}

func (o *Ollama) Name() string { return ProviderOllama }

// Generate requests a single non-streamed chat response.
func (o *Ollama) Generate(ctx context.Context, systemPrompt, userQuery string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	tokens := CountTokens(systemPrompt) + CountTokens(userQuery)
	metrics.RecordPromptTokens(tokens)

	req := o.chatRequest(systemPrompt, userQuery)

	var result strings.Builder
	start := time.Now()
	if err := o.client.Chat(ctx, &req, func(res api.ChatResponse) error {
		result.WriteString(res.Message.Content)
		return nil
	}); err != nil {
		metrics.RecordUpstream(ProviderOllama, "error", time.Since(start))
		return "", fmt.Errorf("error sending request: %w", err)
	}
	metrics.RecordUpstream(ProviderOllama, "ok", time.Since(start))

	o.logger.Debug("chat completion",
		slog.String("host", o.host),
		slog.String("model", o.model),
		slog.Int("prompt_tokens", tokens),
		slog.Duration("elapsed", time.Since(start)))

	return result.String(), nil
}

func (o *Ollama) chatRequest(systemPrompt, userQuery string) api.ChatRequest {
	stream := false
	return api.ChatRequest{
		Model: o.model,
		Messages: []api.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userQuery},
		},
		Stream: &stream,
		Options: map[string]any{
			"temperature": DefaultTemperature,
			"num_predict": DefaultMaxTokens,
		},
	}
}
