// Package app wires the application together: it builds the isolated
// logger, registers the built-in plugin pipeline, and drives one resolve
// invocation from configuration to formatted output.
package app
