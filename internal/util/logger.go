// internal/util/logger.go
package util

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var logger *slog.Logger

// LoggerOptions selects the level and output format of the global logger.
type LoggerOptions struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

// InitLogger initializes the global structured logger on stdout.
func InitLogger(opts LoggerOptions) {
	logger = NewLogger(os.Stdout, opts)
	slog.SetDefault(logger)
}

// NewLogger builds a logger writing to w. JSON is the default format.
func NewLogger(w io.Writer, opts LoggerOptions) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		AddSource: true,
		Level:     ParseLogLevel(opts.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// ParseLogLevel converts a level name to slog.Level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// GetLogger returns the initialized global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger(LoggerOptions{})
	}
	return logger
}
