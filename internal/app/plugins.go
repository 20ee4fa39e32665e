package app

import (
	"github.com/vk/supertoml/internal/resolver"
	"github.com/vk/supertoml/plugins/after"
	"github.com/vk/supertoml/plugins/before"
	"github.com/vk/supertoml/plugins/importer"
	"github.com/vk/supertoml/plugins/noop"
	"github.com/vk/supertoml/plugins/reference"
	"github.com/vk/supertoml/plugins/templating"
)

// corePlugins returns the built-in plugins in their fixed pipeline order:
// dependency resolution first, then imports, then templating against
// everything resolved so far, then the post-ordering and merge-only steps.
func corePlugins() []resolver.Plugin {
	return []resolver.Plugin{
		&before.Plugin{},
		&importer.Plugin{},
		&templating.Plugin{},
		&after.Plugin{},
		&reference.Plugin{},
		&noop.Plugin{},
	}
}
