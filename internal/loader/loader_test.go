package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses a document into the value tree", func(t *testing.T) {
		path := writeFixture(t, `
[database]
host = "localhost"
port = 5432
ratio = 0.5
enabled = true
tags = ["a", "b"]
`)
		root, err := Load(path)
		require.NoError(t, err)

		db, ok := root["database"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "localhost", db["host"])
		assert.Equal(t, int64(5432), db["port"])
		assert.Equal(t, 0.5, db["ratio"])
		assert.Equal(t, true, db["enabled"])
		assert.Equal(t, []any{"a", "b"}, db["tags"])
	})

	t.Run("missing file yields FileReadError", func(t *testing.T) {
		_, err := Load("/nonexistent/file.toml")
		require.Error(t, err)

		var readErr *FileReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, "/nonexistent/file.toml", readErr.Path)
		assert.ErrorContains(t, err, "failed to read file")
	})

	t.Run("invalid TOML yields ParseError", func(t *testing.T) {
		path := writeFixture(t, "this is not valid toml {{{")
		_, err := Load(path)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.ErrorContains(t, err, "failed to parse TOML")
	})
}

func TestTable(t *testing.T) {
	root := map[string]any{
		"server":  map[string]any{"host": "localhost"},
		"not_one": "just a string",
	}

	t.Run("extracts an existing table", func(t *testing.T) {
		table, err := Table(root, "server", "")
		require.NoError(t, err)
		assert.Equal(t, "localhost", table["host"])
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := Table(root, "nope", "")
		var notFound *TableNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "nope", notFound.Table)
		assert.EqualError(t, err, "table 'nope' not found")
	})

	t.Run("missing table names the external file", func(t *testing.T) {
		_, err := Table(root, "nope", "other.toml")
		assert.EqualError(t, err, "table 'nope' not found in file 'other.toml'")
	})

	t.Run("non-table value", func(t *testing.T) {
		_, err := Table(root, "not_one", "")
		var invalid *InvalidTableTypeError
		require.ErrorAs(t, err, &invalid)
		assert.EqualError(t, err, "item 'not_one' is not a table")
	})
}
