// Package tomlval defines the value currency used across the resolver: the
// generic Go tree produced by the TOML decoder (string, int64, float64, bool,
// []any, map[string]any, time.Time). It provides the deep-clone and ordering
// helpers that keep values from being aliased across resolution frames.
package tomlval
