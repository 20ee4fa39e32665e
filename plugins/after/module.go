// Package after implements the 'after' pipeline step: it resolves dependent
// tables once the current table's earlier steps have run.
package after

import (
	"context"

	"github.com/vk/supertoml/internal/plugconf"
	"github.com/vk/supertoml/internal/resolver"
)

// Plugin resolves each table named in its config, in array order. Unlike
// 'before' it publishes nothing itself; it is purely an ordering construct,
// and publication of the current table's values is owned by whichever
// earlier step merged them.
type Plugin struct{}

// Name returns the config key this plugin is addressed by.
func (p *Plugin) Name() string { return "after" }

// Process implements resolver.Plugin.
func (p *Plugin) Process(ctx context.Context, s *resolver.Session, local map[string]any, config any) error {
	arr, ok := config.([]any)
	if !ok {
		return nil
	}

	var names []string
	if err := plugconf.Decode(arr, &names); err != nil {
		return &resolver.PluginConfigError{Plugin: p.Name(), Err: err}
	}
	for _, name := range names {
		if err := s.ResolveTable(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
