package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // debug, info, warn, error

	// Server
	ServerAddr   string
	BaseURL      string
	CORSOrigins  string // Comma-separated allowed origins
	RateLimitMax int    // Requests per minute per IP

	// Rate limiter storage; in-memory when empty
	RedisURL string

	// Optional read-only corpus source; the built-in corpus is used when empty
	CorpusDatabaseURL string

	// Text generation
	LLMProvider   string // "openai" or "ollama"
	OpenAIAPIKey  string
	OpenAIBaseURL string // Override for OpenAI-compatible gateways
	OpenAIModel   string
	OllamaHost    string
	OllamaModel   string
	LLMTimeout    time.Duration

	// Query responses
	RecordLimit          int // Matched records returned per query
	ContextPreviewLength int // Characters of context returned per query

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Helix"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from a .env file, if present, and environment
// variables with sensible defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env file: %v", err)
	}

	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),

		CorpusDatabaseURL: getEnv("CORPUS_DATABASE_URL", ""),

		LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		OllamaHost:    getEnv("OLLAMA_HOST", ""),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.1"),
		LLMTimeout:    getEnvDuration("LLM_TIMEOUT", 30*time.Second),

		RecordLimit:          getEnvInt("RECORD_LIMIT", 5),
		ContextPreviewLength: getEnvInt("CONTEXT_PREVIEW_LENGTH", 500),

		SiteTitle:   getEnv("SITE_TITLE", "Helix"),
		SiteTagline: getEnv("SITE_TAGLINE", "Biology-aware research assistant for spatial transcriptomics"),
		SiteFooter:  getEnv("SITE_FOOTER", "Helix - spatial transcriptomics and target validation insights"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// DelegationEnabled reports whether answers are delegated to a text
// generation service. It is decided once, from the selected provider's
// credential or endpoint.
func (c *Config) DelegationEnabled() bool {
	switch c.LLMProvider {
	case "ollama":
		return c.OllamaHost != ""
	default:
		return c.OpenAIAPIKey != ""
	}
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger: text output in development, JSON
// otherwise.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
