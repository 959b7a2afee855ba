package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jwebster45206/crampton-estate/internal/config"
)

// Setup configures the global slog logger based on environment. Logs go to
// w, never to the narration stream on stdout.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Open returns the log destination named by cfg: LOG_FILE when set,
// stderr otherwise. The returned close function is always safe to call.
func Open(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.LogFile == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}

// WithSession adds the session ID to logger context
func WithSession(logger *slog.Logger, id uuid.UUID) *slog.Logger {
	return logger.With("session_id", id.String())
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
