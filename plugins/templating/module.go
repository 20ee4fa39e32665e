// Package templating implements the 'templating' pipeline step: it renders
// template expressions inside a table's values against everything the
// session has resolved so far.
package templating

import (
	"context"

	"github.com/vk/supertoml/internal/resolver"
	"github.com/vk/supertoml/internal/template"
	"github.com/vk/supertoml/internal/tomlval"
)

// Plugin walks the table's values recursively: strings containing template
// markup are rendered and replaced by the rendered string, arrays and tables
// are rebuilt element by element, every other scalar passes through
// untouched. All values in one table render against the same context snapshot
// taken before the walk. The transformed values are published when done.
type Plugin struct{}

// Name returns the config key this plugin is addressed by.
func (p *Plugin) Name() string { return "templating" }

// Process implements resolver.Plugin.
func (p *Plugin) Process(ctx context.Context, s *resolver.Session, local map[string]any, config any) error {
	vars := s.TemplateContext(nil)

	for _, key := range tomlval.SortedKeys(local) {
		transformed, err := transform(local[key], vars)
		if err != nil {
			return err
		}
		local[key] = transformed
	}

	s.Publish(local)
	return nil
}

// transform renders one value tree against vars.
func transform(v any, vars map[string]any) (any, error) {
	switch val := v.(type) {
	case string:
		if !template.HasDelimiters(val) {
			return v, nil
		}
		return template.Render(val, vars)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			transformed, err := transform(item, vars)
			if err != nil {
				return nil, err
			}
			out[i] = transformed
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			transformed, err := transform(item, vars)
			if err != nil {
				return nil, err
			}
			out[k] = transformed
		}
		return out, nil
	default:
		return v, nil
	}
}
