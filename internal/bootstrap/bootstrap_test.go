package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helix/internal/config"
	"helix/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadCorpusBuiltIn(t *testing.T) {
	c, database, err := LoadCorpus(context.Background(), &config.Config{}, discardLogger())

	require.NoError(t, err)
	assert.Nil(t, database)
	assert.Equal(t, 14, c.RecordCount())
	assert.Equal(t, 6, c.TargetCount())
}

func TestLoadCorpusBadDatabase(t *testing.T) {
	cfg := &config.Config{CorpusDatabaseURL: "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"}

	_, database, err := LoadCorpus(context.Background(), cfg, discardLogger())

	assert.Error(t, err)
	assert.Nil(t, database)
}

func TestNewServiceModes(t *testing.T) {
	c, _, err := LoadCorpus(context.Background(), &config.Config{}, discardLogger())
	require.NoError(t, err)

	local, err := NewService(&config.Config{LLMProvider: "openai", RecordLimit: 5}, c, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, models.ModeLocal, local.Mode())

	delegated, err := NewService(&config.Config{LLMProvider: "openai", OpenAIAPIKey: "sk-x", OpenAIModel: "gpt-4o"}, c, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, models.ModeDelegated, delegated.Mode())

	_, err = NewService(&config.Config{LLMProvider: "ollama", OllamaHost: "not a url"}, c, discardLogger())
	assert.Error(t, err)
}
