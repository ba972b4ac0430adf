package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/akinloluwami/formdrop/internal/config"
)

// NewLogger creates a *slog.Logger from cfg, tags every record with the
// build version and installs it as the default logger.
//
// Format "json" produces structured output for production. Any other format
// produces text output with source locations for local development.
// Level is one of debug, info, warn, error (case-insensitive); default info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(slog.String("version", Version))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
