package app

import (
	"io"
	"log/slog"
)

// levels maps the accepted log-level names. Config validation rejects
// anything else before a logger is built; the info fallback in newLogger
// only guards direct library construction of a Config.
var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the App's private logger from its configuration. The
// logger writes to logW and never to the App's output writer: stdout carries
// only the formatted resolve result, so the tool stays safe to pipe. The
// global slog default is left untouched.
func newLogger(cfg *Config, logW io.Writer) *slog.Logger {
	level, ok := levels[cfg.LogLevel]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(logW, opts)
	} else {
		handler = slog.NewTextHandler(logW, opts)
	}
	return slog.New(handler)
}
