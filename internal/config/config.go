package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelName string `env:"LOG_LEVEL" envDefault:"warn"`
	// LogFile receives logs instead of stderr when set.
	LogFile string `env:"LOG_FILE"`

	// Seed drives every random outcome. 0 draws a fresh seed.
	Seed int64 `env:"HAUNT_SEED" envDefault:"0"`
	// Pacing prints narration character by character.
	Pacing    bool          `env:"HAUNT_PACING" envDefault:"true"`
	CharDelay time.Duration `env:"HAUNT_CHAR_DELAY" envDefault:"30ms"`
	// ScenarioPath replaces the built-in estate when set.
	ScenarioPath string `env:"HAUNT_SCENARIO"`

	LogLevel slog.Level
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CharDelay < 0 {
		return nil, fmt.Errorf("HAUNT_CHAR_DELAY must not be negative, got %s", cfg.CharDelay)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	return &cfg, nil
}

// IsProduction reports whether logs should be machine-readable.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
