// Package loader reads a TOML document from disk into the generic value tree
// and extracts named tables from it. It owns the error types for everything
// that can go wrong at the document boundary: unreadable files, parse
// failures, and missing or mis-typed tables.
package loader
