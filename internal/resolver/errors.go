package resolver

import "fmt"

// CycleError reports a table that transitively re-entered its own
// resolution.
type CycleError struct {
	Table string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected when processing table '%s'", e.Table)
}

// DepthExceededError reports a resolution chain deeper than the session's
// configured limit. It exists so that pathological import/reference graphs
// fail cleanly before exhausting the stack.
type DepthExceededError struct {
	Table string
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("resolution depth limit (%d) exceeded at table '%s'", e.Limit, e.Table)
}

// PluginError tags any failure inside a plugin with the plugin's name.
// Errors that are already tagged are never wrapped a second time, so nested
// resolutions surface the innermost attribution.
type PluginError struct {
	Plugin string
	Err    error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("plugin '%s' error: %v", e.Plugin, e.Err)
}

func (e *PluginError) Unwrap() error { return e.Err }

// PluginConfigError reports a plugin config subtree that failed to decode
// into the plugin's expected shape.
type PluginConfigError struct {
	Plugin string
	Err    error
}

func (e *PluginConfigError) Error() string {
	return fmt.Sprintf("plugin '%s' failed to decode its configuration: %v", e.Plugin, e.Err)
}

func (e *PluginConfigError) Unwrap() error { return e.Err }
