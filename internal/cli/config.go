package cli

import (
	"fmt"
	"log/slog"

	"github.com/joeshaw/envdecode"
)

// Config carries the process-level settings, populated from the
// environment. The OpenAI key is deliberately not required here: only
// commands that actually talk to a model check for it, so offline
// commands (validate, version) work without credentials.
type Config struct {
	// OpenAIAPIKey authenticates the model calls. ENV: OPENAI_API_KEY
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	// OpenAIModel names the chat model. ENV: OPENAI_MODEL
	OpenAIModel string `env:"OPENAI_MODEL,default=gpt-4o-mini"`
	// OpenAIBaseURL overrides the endpoint for compatible providers. ENV: OPENAI_BASE_URL
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// RedisAddr enables the Redis session store when set. ENV: SIFT_REDIS_ADDR
	RedisAddr string `env:"SIFT_REDIS_ADDR"`
	// RedisPassword for the session store. ENV: SIFT_REDIS_PASSWORD
	RedisPassword string `env:"SIFT_REDIS_PASSWORD"`

	// ListenAddr is the HTTP bind address for serve. ENV: SIFT_LISTEN_ADDR
	ListenAddr string `env:"SIFT_LISTEN_ADDR,default=:8080"`
	// LogLevel is one of debug, info, warn, error. ENV: SIFT_LOG_LEVEL
	LogLevel string `env:"SIFT_LOG_LEVEL,default=info"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the textual level to slog.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
