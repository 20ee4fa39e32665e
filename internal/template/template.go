// Package template wraps the pongo2 engine behind the small rendering
// capability the plugins need: compile a template string, evaluate it against
// a variable context, and expose the environment-lookup helpers.
package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/flosch/pongo2/v6"
)

func init() {
	// Values are configuration, not HTML; rendering must not entity-escape
	// quotes or ampersands.
	pongo2.SetAutoescape(false)
}

// Delimiters recognized by the engine: expressions, statements, comments.
var delimiters = []string{"{{", "{%", "{#"}

// HasDelimiters reports whether s contains any template markup and is worth
// handing to the engine at all.
func HasDelimiters(s string) bool {
	for _, d := range delimiters {
		if strings.Contains(s, d) {
			return true
		}
	}
	return false
}

// env looks up an environment variable and fails when it is unset.
func env(name string) (string, error) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("environment variable '%s' is not set", name)
	}
	return val, nil
}

// envOr looks up an environment variable, falling back to a default.
func envOr(name, fallback string) string {
	if val, ok := os.LookupEnv(name); ok {
		return val
	}
	return fallback
}

// Render evaluates src as a template against vars. The vars mapping is not
// mutated; the env/env_or helpers are layered on top of it.
func Render(src string, vars map[string]any) (string, error) {
	tpl, err := pongo2.FromString(src)
	if err != nil {
		return "", fmt.Errorf("template parse error: %w", err)
	}

	ctx := make(pongo2.Context, len(vars)+2)
	for k, v := range vars {
		ctx[k] = v
	}
	ctx["env"] = env
	ctx["env_or"] = envOr

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("template render error: %w", err)
	}
	return out, nil
}
