// Package reference implements the 'reference' pipeline step: it pulls
// another table's fully resolved values into the session results, optionally
// under a key prefix.
package reference

import (
	"context"

	"github.com/vk/supertoml/internal/plugconf"
	"github.com/vk/supertoml/internal/resolver"
)

// Config names the referenced table and the optional prefix its keys are
// merged under. Both fields are optional; with no table the step only
// publishes the current table's own values.
type Config struct {
	Table  *string `mapstructure:"table"`
	Prefix string  `mapstructure:"prefix"`
}

// Plugin resolves the referenced table in isolation (sharing the session's
// call stack, so cycles through the reference are still caught) and merges
// what that resolution produced into the session results. It always
// publishes the current table's own values as well.
type Plugin struct{}

// Name returns the config key this plugin is addressed by.
func (p *Plugin) Name() string { return "reference" }

// Process implements resolver.Plugin.
func (p *Plugin) Process(ctx context.Context, s *resolver.Session, local map[string]any, config any) error {
	var cfg Config
	if err := plugconf.Decode(config, &cfg); err != nil {
		return &resolver.PluginConfigError{Plugin: p.Name(), Err: err}
	}

	if cfg.Table != nil {
		referenced, err := s.ResolveTableIsolated(ctx, *cfg.Table)
		if err != nil {
			return err
		}
		s.MergeValues(cfg.Prefix, referenced)
	}

	s.Publish(local)
	return nil
}
