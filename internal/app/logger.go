package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/learning-continuity/internal/config"
)

// appName is attached to every log record.
const appName = "learning-continuity"

// NewLogger creates the process logger from cfg.Log, writing to os.Stderr,
// and sets it as the slog default.
//
// Every record carries app, version and storage attributes. Format "json"
// produces structured output; any other format produces text with source
// locations. Level is one of debug, info, warn, error (case-insensitive) and
// defaults to info.
func NewLogger(cfg *config.Config) *slog.Logger {
	logger := newLogger(os.Stderr, cfg.Log, baseAttrs(cfg.Storage.Driver)...)
	slog.SetDefault(logger)
	return logger
}

func baseAttrs(driver string) []any {
	return []any{
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("storage", driver),
	}
}

func newLogger(w io.Writer, cfg config.LogConfig, attrs ...any) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(attrs...)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
