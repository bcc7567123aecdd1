package app

import (
	"io"
	"log/slog"
)

var levelByName = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger creates the logger for a single App from its configuration. It
// does not set the global logger, so several apps can coexist in tests.
// Unknown levels fall back to warn so that board output stays readable.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, ok := levelByName[cfg.LogLevel]
	if !ok {
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}
