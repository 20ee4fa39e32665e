package loader

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vk/supertoml/internal/tomlval"
)

// FileReadError wraps a failure to read a source document from disk.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file '%s': %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// ParseError wraps a TOML syntax or type error in a source document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse TOML in '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TableNotFoundError reports a table name that does not exist in a document.
// File is set when the lookup happened in a file other than the session's
// root document (imports).
type TableNotFoundError struct {
	Table string
	File  string
}

func (e *TableNotFoundError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("table '%s' not found in file '%s'", e.Table, e.File)
	}
	return fmt.Sprintf("table '%s' not found", e.Table)
}

// InvalidTableTypeError reports a key that exists but does not hold a table.
type InvalidTableTypeError struct {
	Name string
	File string
}

func (e *InvalidTableTypeError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("item '%s' in file '%s' is not a table", e.Name, e.File)
	}
	return fmt.Sprintf("item '%s' is not a table", e.Name)
}

// Load reads and parses the TOML file at path into the generic value tree.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return root, nil
}

// Table extracts the named sub-table from a loaded document. The file
// argument is only used for error messages and may be empty for the
// session's root document.
func Table(root map[string]any, name, file string) (map[string]any, error) {
	raw, ok := root[name]
	if !ok {
		return nil, &TableNotFoundError{Table: name, File: file}
	}
	table, ok := tomlval.AsTable(raw)
	if !ok {
		return nil, &InvalidTableTypeError{Name: name, File: file}
	}
	return table, nil
}
