package tomlval

import "sort"

// Reserved is the per-table key that holds plugin configuration. It is never
// treated as user data.
const Reserved = "_"

// Clone returns a deep copy of a decoded TOML value. Scalars are returned
// as-is; arrays and tables are rebuilt so that no mutable state is shared
// between the copy and the original.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneTable(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Clone(item)
		}
		return out
	default:
		return v
	}
}

// CloneTable returns a deep copy of a table.
func CloneTable(t map[string]any) map[string]any {
	out := make(map[string]any, len(t))
	for k, v := range t {
		out[k] = Clone(v)
	}
	return out
}

// SortedKeys returns the table's keys in lexicographic order. Formatters and
// merge loops iterate through this to stay deterministic.
func SortedKeys(t map[string]any) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsTable reports whether v is a table, returning it typed if so.
func AsTable(v any) (map[string]any, bool) {
	t, ok := v.(map[string]any)
	return t, ok
}
