// Package logging builds the slog logger shared by all commands.
package logging

import (
	"io"
	"log/slog"
)

// Options selects the log level and output format.
type Options struct {
	Level string // debug, info, warn, error
	JSON  bool
}

// New returns a logger writing to w at the configured level.
// Unknown level names fall back to warn, keeping command output quiet.
func New(w io.Writer, opts Options) *slog.Logger {
	var level slog.Level
	switch opts.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	hopts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}
	return slog.New(handler)
}
