// Package logger builds the structured logger used by the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the level, encoding and destination of log records.
type Options struct {
	Level  string    // debug, info, warn, error; empty means info
	Format string    // text or json; empty means text
	Output io.Writer // defaults to os.Stderr
}

// New returns a logger for options. Unrecognized values fall back to their
// defaults and the fallback is reported through the returned logger.
func New(options Options) *slog.Logger {
	output := options.Output
	if output == nil {
		output = os.Stderr
	}

	var warnings []string

	var opts slog.HandlerOptions
	switch strings.ToLower(options.Level) {
	case "", "info":
		opts.Level = slog.LevelInfo
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
		warnings = append(warnings, "could not parse logger level")
	}

	var handler slog.Handler
	switch strings.ToLower(options.Format) {
	case "", "text":
		handler = slog.NewTextHandler(output, &opts)
	case "json":
		handler = slog.NewJSONHandler(output, &opts)
	default:
		handler = slog.NewTextHandler(output, &opts)
		warnings = append(warnings, "could not parse logger format")
	}

	logger := slog.New(handler)
	for _, w := range warnings {
		logger.Warn(w, "level", options.Level, "format", options.Format)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
