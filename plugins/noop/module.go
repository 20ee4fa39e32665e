// Package noop implements the diagnostic pipeline step: it transforms
// nothing and optionally logs a marker, which makes it useful as a tracer
// and as the step that publishes a table that needs no other processing.
package noop

import (
	"context"

	"github.com/vk/supertoml/internal/ctxlog"
	"github.com/vk/supertoml/internal/plugconf"
	"github.com/vk/supertoml/internal/resolver"
)

// Config controls the diagnostic. Disabled by default; with no message the
// diagnostic reports how many values the session holds so far.
type Config struct {
	Message *string `mapstructure:"message"`
	Enabled bool    `mapstructure:"enabled"`
}

// Plugin publishes the table's values unchanged.
type Plugin struct{}

// Name returns the config key this plugin is addressed by.
func (p *Plugin) Name() string { return "noop" }

// Process implements resolver.Plugin.
func (p *Plugin) Process(ctx context.Context, s *resolver.Session, local map[string]any, config any) error {
	var cfg Config
	if err := plugconf.Decode(config, &cfg); err != nil {
		return &resolver.PluginConfigError{Plugin: p.Name(), Err: err}
	}

	if cfg.Enabled {
		logger := ctxlog.FromContext(ctx)
		if cfg.Message != nil {
			logger.Info("Noop plugin diagnostic.", "message", *cfg.Message)
		} else {
			logger.Info("Noop plugin diagnostic.", "resolved_values", s.ValueCount())
		}
	}

	s.Publish(local)
	return nil
}
