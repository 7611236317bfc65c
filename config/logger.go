package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process logger for the named binary. Production emits
// JSON tagged with the service name so log aggregation can tell the API
// apart from the one-shot commands sharing this config; everything else
// gets readable text. LOG_LEVEL accepts debug, info, warn, or error
// (default info).
func NewLogger(service string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel()}
	if os.Getenv("GO_ENV") == "production" {
		handler := slog.NewJSONHandler(os.Stdout, opts)
		return slog.New(handler).With("service", service)
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func logLevel() slog.Level {
	var level slog.Level
	raw := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if raw == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}
