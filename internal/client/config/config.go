// Package config loads the client configuration from the environment.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the client needs to talk to the platform.
type Config struct {
	APIURL     string        `env:"RASTRO_API_URL,     default=http://localhost:8000"`
	APIKey     string        `env:"RASTRO_API_KEY"`
	DBPath     string        `env:"RASTRO_DB,          default=rastro.db"`
	CacheDB    string        `env:"RASTRO_CACHE_DB,    default=rastro-cache.db"`
	SessionTTL time.Duration `env:"RASTRO_SESSION_TTL, default=24h"`
	LogLevel   string        `env:"RASTRO_LOG_LEVEL,   default=info"`

	// Passphrase, when set, seals the stored token with
	// passphrase-derived encryption.
	Passphrase string `env:"RASTRO_PASSPHRASE"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured level string onto a slog level,
// defaulting to info for anything unrecognized.
func (c *Config) SlogLevel() slog.Level {
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
