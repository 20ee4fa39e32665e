package resolver

import (
	"context"
	"fmt"
)

// Plugin is the contract every transformation step conforms to. Name is the
// stable identifier used to look up the plugin's config under a table's "_"
// key. Process may mutate local in place, publish values into the session,
// and trigger resolution of other tables through s.
type Plugin interface {
	Name() string
	Process(ctx context.Context, s *Session, local map[string]any, config any) error
}

// Registry holds the registered plugins for a single application instance,
// keyed by name, plus the order in which they run.
type Registry struct {
	plugins map[string]Plugin
	order   []string
}

// NewRegistry creates and initializes an empty Registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds a plugin under its name. Registering the same name twice is
// a programmer error.
func (r *Registry) Register(p Plugin) {
	if _, exists := r.plugins[p.Name()]; exists {
		panic(fmt.Sprintf("plugin with name '%s' already registered", p.Name()))
	}
	r.plugins[p.Name()] = p
	r.order = append(r.order, p.Name())
}

// SetPipeline fixes the execution order explicitly. Every name must refer to
// a registered plugin; names left out do not run.
func (r *Registry) SetPipeline(names ...string) error {
	for _, name := range names {
		if _, ok := r.plugins[name]; !ok {
			return fmt.Errorf("pipeline references unregistered plugin '%s'", name)
		}
	}
	r.order = append([]string(nil), names...)
	return nil
}

// pipeline returns the plugins in execution order.
func (r *Registry) pipeline() []Plugin {
	out := make([]Plugin, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.plugins[name])
	}
	return out
}
