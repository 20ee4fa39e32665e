// Package importer implements the 'import' pipeline step: it pulls tables
// out of other TOML files into the current table's values, optionally
// rewriting their keys through a template.
package importer

import (
	"context"
	"path/filepath"

	"github.com/vk/supertoml/internal/loader"
	"github.com/vk/supertoml/internal/plugconf"
	"github.com/vk/supertoml/internal/resolver"
	"github.com/vk/supertoml/internal/template"
	"github.com/vk/supertoml/internal/tomlval"
)

// Entry is one import directive: take the named table from the named file.
// When KeyFormat is set, each imported key is rewritten by rendering it as a
// template whose context is the session's current values plus a 'key'
// variable holding the original key.
type Entry struct {
	File      string  `mapstructure:"file"`
	Table     string  `mapstructure:"table"`
	KeyFormat *string `mapstructure:"key_format"`
}

// Plugin loads each configured file fresh (no caching across entries or
// sessions) and inserts the imported pairs into the current table's values,
// later entries winning on key collisions. It publishes the table's values
// when done, whether or not anything was imported.
type Plugin struct{}

// Name returns the config key this plugin is addressed by.
func (p *Plugin) Name() string { return "import" }

// Process implements resolver.Plugin.
func (p *Plugin) Process(ctx context.Context, s *resolver.Session, local map[string]any, config any) error {
	arr, ok := config.([]any)
	if !ok {
		s.Publish(local)
		return nil
	}

	var entries []Entry
	if err := plugconf.Decode(arr, &entries); err != nil {
		return &resolver.PluginConfigError{Plugin: p.Name(), Err: err}
	}

	for _, entry := range entries {
		if err := p.importOne(s, entry, local); err != nil {
			return err
		}
	}

	s.Publish(local)
	return nil
}

// importOne applies a single import entry to the table's working values.
func (p *Plugin) importOne(s *resolver.Session, entry Entry, local map[string]any) error {
	path := entry.File
	if !filepath.IsAbs(path) {
		// Relative imports are resolved against the importing document, not
		// the process working directory.
		path = filepath.Join(filepath.Dir(s.FilePath()), path)
	}

	root, err := loader.Load(path)
	if err != nil {
		return err
	}
	table, err := loader.Table(root, entry.Table, entry.File)
	if err != nil {
		return err
	}

	for _, key := range tomlval.SortedKeys(table) {
		finalKey := key
		if entry.KeyFormat != nil {
			vars := s.TemplateContext(map[string]any{"key": key})
			rendered, err := template.Render(*entry.KeyFormat, vars)
			if err != nil {
				return err
			}
			finalKey = rendered
		}
		local[finalKey] = tomlval.Clone(table[key])
	}
	return nil
}
