// Package formatter renders a resolved mapping into the supported output
// formats. Formatters are pure value-to-string functions: all resolution has
// already happened by the time they run, and every non-TOML format emits
// keys in lexicographic order so output is deterministic.
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vk/supertoml/internal/tomlval"
)

// Names lists the supported output formats, default first.
func Names() []string {
	return []string{"toml", "json", "dotenv", "exports", "tfvars"}
}

// Render dispatches to the named format.
func Render(format string, table map[string]any) (string, error) {
	switch format {
	case "toml":
		return TOML(table)
	case "json":
		return JSON(table)
	case "dotenv":
		return Dotenv(table)
	case "exports":
		return Exports(table)
	case "tfvars":
		return TFVars(table)
	default:
		return "", fmt.Errorf("unknown output format '%s'", format)
	}
}

// TOML renders the mapping as a TOML document. This is a full-fidelity
// round trip: parsing the output and extracting the same keys yields the
// input mapping.
func TOML(table map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(table); err != nil {
		return "", fmt.Errorf("failed to encode TOML: %w", err)
	}
	return buf.String(), nil
}

// JSON renders the mapping as pretty-printed JSON. Datetimes become RFC 3339
// strings.
func JSON(table map[string]any) (string, error) {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(data), nil
}

// Dotenv renders the mapping as KEY=value lines. Arrays and tables are
// rendered as compact JSON.
func Dotenv(table map[string]any) (string, error) {
	var lines []string
	for _, key := range tomlval.SortedKeys(table) {
		str, err := scalarString(table[key])
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("%s=%s", key, str))
	}
	return strings.Join(lines, "\n"), nil
}

// Exports renders the mapping as shell export statements. Double quotes
// embedded in values are escaped so the output stays valid shell.
func Exports(table map[string]any) (string, error) {
	var lines []string
	for _, key := range tomlval.SortedKeys(table) {
		str, err := scalarString(table[key])
		if err != nil {
			return "", err
		}
		escaped := strings.ReplaceAll(str, `"`, `\"`)
		lines = append(lines, fmt.Sprintf("export \"%s=%s\"", key, escaped))
	}
	return strings.Join(lines, "\n"), nil
}

// TFVars renders the mapping as Terraform variable assignments: strings and
// datetimes quoted, arrays inline, tables as nested key = value blocks.
func TFVars(table map[string]any) (string, error) {
	var lines []string
	for _, key := range tomlval.SortedKeys(table) {
		rendered, err := tfValue(table[key], 0)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("%s = %s", key, rendered))
	}
	return strings.Join(lines, "\n"), nil
}

func tfValue(v any, depth int) (string, error) {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	case time.Time:
		return strconv.Quote(val.Format(time.RFC3339)), nil
	case []any:
		elems := make([]string, len(val))
		for i, item := range val {
			rendered, err := tfValue(item, depth)
			if err != nil {
				return "", err
			}
			elems[i] = rendered
		}
		return "[" + strings.Join(elems, ", ") + "]", nil
	case map[string]any:
		indent := strings.Repeat("  ", depth)
		var b strings.Builder
		b.WriteString("{\n")
		for _, key := range tomlval.SortedKeys(val) {
			rendered, err := tfValue(val[key], depth+1)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "%s  %s = %s\n", indent, key, rendered)
		}
		b.WriteString(indent + "}")
		return b.String(), nil
	default:
		return "", fmt.Errorf("cannot render value of type %T", v)
	}
}

// scalarString renders a value for the flat line-oriented formats.
func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	case time.Time:
		return val.Format(time.RFC3339), nil
	case []any, map[string]any:
		data, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("failed to encode value: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("cannot render value of type %T", v)
	}
}
