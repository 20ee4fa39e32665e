package integrationtests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/supertoml/internal/resolver"
	"github.com/vk/supertoml/plugins/after"
	"github.com/vk/supertoml/plugins/before"
	"github.com/vk/supertoml/plugins/importer"
	"github.com/vk/supertoml/plugins/noop"
	"github.com/vk/supertoml/plugins/reference"
	"github.com/vk/supertoml/plugins/templating"
)

// newResolver builds a resolver with the full built-in pipeline in its
// production order.
func newResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	reg := resolver.NewRegistry()
	for _, p := range []resolver.Plugin{
		&before.Plugin{},
		&importer.Plugin{},
		&templating.Plugin{},
		&after.Plugin{},
		&reference.Plugin{},
		&noop.Plugin{},
	} {
		reg.Register(p)
	}
	return resolver.New(reg)
}

// writeFile drops a fixture into dir and returns its full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
