// Package resolver is the core engine. It loads a TOML document, resolves a
// named table by running an ordered pipeline of plugins over it, and
// accumulates the flat key/value result for the whole session. Plugins may
// re-enter the engine to resolve other tables; a per-session call stack
// guards against cycles.
package resolver
