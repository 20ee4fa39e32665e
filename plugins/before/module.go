// Package before implements the 'before' pipeline step: it resolves the
// tables a table depends on ahead of the table's remaining steps.
package before

import (
	"context"

	"github.com/vk/supertoml/internal/plugconf"
	"github.com/vk/supertoml/internal/resolver"
)

// Plugin resolves each table named in its config, in array order, and then
// publishes the current table's own values into the session results. The
// publish is deliberate and asymmetric with 'after': values published here
// are already visible when tables resolved later in the session run their
// templates.
type Plugin struct{}

// Name returns the config key this plugin is addressed by.
func (p *Plugin) Name() string { return "before" }

// Process implements resolver.Plugin.
func (p *Plugin) Process(ctx context.Context, s *resolver.Session, local map[string]any, config any) error {
	if arr, ok := config.([]any); ok {
		var names []string
		if err := plugconf.Decode(arr, &names); err != nil {
			return &resolver.PluginConfigError{Plugin: p.Name(), Err: err}
		}
		for _, name := range names {
			if err := s.ResolveTable(ctx, name); err != nil {
				return err
			}
		}
	}

	s.Publish(local)
	return nil
}
