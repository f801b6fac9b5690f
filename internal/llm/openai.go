package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"helix/internal/metrics"
)

// OpenAI generates answers through an OpenAI-compatible chat completions API.
type OpenAI struct {
	model   string
	timeout time.Duration

	client *goopenai.Client
	logger *slog.Logger
}

// NewOpenAI creates a client. An empty baseURL uses the public OpenAI API.
func NewOpenAI(apiKey, baseURL, model string, timeout time.Duration, logger *slog.Logger) *OpenAI {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAI{
		model:   model,
		timeout: timeout,
		client:  goopenai.NewClientWithConfig(cfg),
		logger:  logger.With(slog.String("module", "openai")),
	}
}

func (o *OpenAI) Name() string { return ProviderOpenAI }

// Generate sends the system prompt and the user's question as a two-message
// exchange. A response without choices yields an empty string.
func (o *OpenAI) Generate(ctx context.Context, systemPrompt, userQuery string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	tokens := CountTokens(systemPrompt) + CountTokens(userQuery)
	metrics.RecordPromptTokens(tokens)

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, o.chatRequest(systemPrompt, userQuery))
	if err != nil {
		metrics.RecordUpstream(ProviderOpenAI, "error", time.Since(start))
		return "", fmt.Errorf("error sending request: %w", err)
	}
	metrics.RecordUpstream(ProviderOpenAI, "ok", time.Since(start))

	o.logger.Debug("chat completion",
		slog.String("model", o.model),
		slog.Int("prompt_tokens", tokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
		slog.Duration("elapsed", time.Since(start)))

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAI) chatRequest(systemPrompt, userQuery string) goopenai.ChatCompletionRequest {
	return goopenai.ChatCompletionRequest{
		Model: o.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: userQuery},
		},
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}
