package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasDelimiters(t *testing.T) {
	assert.True(t, HasDelimiters("{{ host }}"))
	assert.True(t, HasDelimiters("{% if x %}y{% endif %}"))
	assert.True(t, HasDelimiters("{# comment #}"))
	assert.False(t, HasDelimiters("plain string"))
	assert.False(t, HasDelimiters("{ not markup }"))
}

func TestRender(t *testing.T) {
	t.Run("substitutes variables", func(t *testing.T) {
		out, err := Render("{{ host }}:{{ port }}", map[string]any{
			"host": "localhost",
			"port": int64(5432),
		})
		require.NoError(t, err)
		assert.Equal(t, "localhost:5432", out)
	})

	t.Run("statements and comments", func(t *testing.T) {
		out, err := Render("{% if debug %}on{% else %}off{% endif %}{# ignored #}", map[string]any{
			"debug": true,
		})
		require.NoError(t, err)
		assert.Equal(t, "on", out)
	})

	t.Run("does not escape configuration values", func(t *testing.T) {
		out, err := Render("{{ dsn }}", map[string]any{
			"dsn": `user="admin"&mode=rw`,
		})
		require.NoError(t, err)
		assert.Equal(t, `user="admin"&mode=rw`, out)
	})

	t.Run("parse error is reported", func(t *testing.T) {
		_, err := Render("{{ unclosed", nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "template parse error")
	})

	t.Run("env fails on unset variable", func(t *testing.T) {
		_, err := Render("{{ env('SUPERTOML_TEST_UNSET_VAR') }}", nil)
		require.Error(t, err)
	})

	t.Run("env reads a set variable", func(t *testing.T) {
		t.Setenv("SUPERTOML_TEST_SET_VAR", "present")
		out, err := Render("{{ env('SUPERTOML_TEST_SET_VAR') }}", nil)
		require.NoError(t, err)
		assert.Equal(t, "present", out)
	})

	t.Run("env_or falls back when unset", func(t *testing.T) {
		out, err := Render("{{ env_or('SUPERTOML_TEST_UNSET_VAR', 'fallback') }}", nil)
		require.NoError(t, err)
		assert.Equal(t, "fallback", out)
	})

	t.Run("env_or prefers the real value", func(t *testing.T) {
		t.Setenv("SUPERTOML_TEST_SET_VAR", "actual")
		out, err := Render("{{ env_or('SUPERTOML_TEST_SET_VAR', 'fallback') }}", nil)
		require.NoError(t, err)
		assert.Equal(t, "actual", out)
	})
}
