package templating

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/supertoml/internal/resolver"
	"github.com/vk/supertoml/plugins/before"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newResolver pairs templating with 'before' so tests can seed the session
// with values to render against.
func newResolver() *resolver.Resolver {
	reg := resolver.NewRegistry()
	reg.Register(&before.Plugin{})
	reg.Register(&Plugin{})
	return resolver.New(reg)
}

func TestTemplating(t *testing.T) {
	ctx := context.Background()

	t.Run("renders strings against resolved values", func(t *testing.T) {
		path := writeDoc(t, `
[base]
host = "localhost"

[app]
url = "http://{{ host }}/api"
[app._]
before = ["base"]
`)
		values, err := newResolver().Resolve(ctx, resolver.Request{FilePath: path, Table: "app"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost/api", values["url"])
	})

	t.Run("plain strings and other scalars pass through", func(t *testing.T) {
		path := writeDoc(t, `
[app]
name = "plain"
port = 8080
ratio = 0.5
debug = true
`)
		values, err := newResolver().Resolve(ctx, resolver.Request{FilePath: path, Table: "app"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"name": "plain", "port": int64(8080), "ratio": 0.5, "debug": true,
		}, values)
	})

	t.Run("arrays and nested tables are rendered recursively", func(t *testing.T) {
		path := writeDoc(t, `
[base]
region = "eu-west-1"

[app]
zones = ["{{ region }}a", "{{ region }}b"]
[app.labels]
location = "{{ region }}"
static = "unchanged"
[app._]
before = ["base"]
`)
		values, err := newResolver().Resolve(ctx, resolver.Request{FilePath: path, Table: "app"})
		require.NoError(t, err)
		assert.Equal(t, []any{"eu-west-1a", "eu-west-1b"}, values["zones"])
		assert.Equal(t, map[string]any{
			"location": "eu-west-1",
			"static":   "unchanged",
		}, values["labels"])
	})

	t.Run("meta variable is available", func(t *testing.T) {
		path := writeDoc(t, `
[app]
source = "{{ _.args.table_name }}"
`)
		values, err := newResolver().Resolve(ctx, resolver.Request{FilePath: path, Table: "app"})
		require.NoError(t, err)
		assert.Equal(t, "app", values["source"])
	})

	t.Run("environment fallback", func(t *testing.T) {
		path := writeDoc(t, `
[app]
secret = "{{ env_or('SUPERTOML_MISSING_X', 'fallback') }}"
`)
		values, err := newResolver().Resolve(ctx, resolver.Request{FilePath: path, Table: "app"})
		require.NoError(t, err)
		assert.Equal(t, "fallback", values["secret"])

		t.Setenv("SUPERTOML_MISSING_X", "real")
		values, err = newResolver().Resolve(ctx, resolver.Request{FilePath: path, Table: "app"})
		require.NoError(t, err)
		assert.Equal(t, "real", values["secret"])
	})

	t.Run("parse failure is attributed to the plugin", func(t *testing.T) {
		path := writeDoc(t, `
[app]
broken = "{{ unclosed"
`)
		_, err := newResolver().Resolve(ctx, resolver.Request{FilePath: path, Table: "app"})
		var pluginErr *resolver.PluginError
		require.ErrorAs(t, err, &pluginErr)
		assert.Equal(t, "templating", pluginErr.Plugin)
		assert.ErrorContains(t, err, "template parse error")
	})

	t.Run("render failure from env() is attributed to the plugin", func(t *testing.T) {
		path := writeDoc(t, `
[app]
secret = "{{ env('SUPERTOML_DEFINITELY_UNSET') }}"
`)
		_, err := newResolver().Resolve(ctx, resolver.Request{FilePath: path, Table: "app"})
		var pluginErr *resolver.PluginError
		require.ErrorAs(t, err, &pluginErr)
		assert.Equal(t, "templating", pluginErr.Plugin)
	})
}
