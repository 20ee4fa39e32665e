package app

import (
	"io"
	"log/slog"

	"github.com/vk/supertoml/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Formatted output goes to outW; logs go to the logger's own
// writer so stdout stays clean for piping.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	resolver *resolver.Resolver
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and plugin
// registry. Passing plugins overrides the built-in pipeline (used by tests).
func NewApp(outW, logW io.Writer, config *Config, plugins ...resolver.Plugin) *App {
	logger := newLogger(config, logW)
	logger.Debug("Logger configured successfully.")

	if len(plugins) == 0 {
		plugins = corePlugins()
	}
	reg := resolver.NewRegistry()
	for _, p := range plugins {
		reg.Register(p)
	}
	logger.Debug("All plugins registered.", "count", len(plugins))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   config,
		resolver: resolver.New(reg),
	}
}
