// Package plugconf decodes the opaque per-plugin configuration value found
// under a table's reserved "_" key into each plugin's typed schema.
package plugconf

import (
	"github.com/go-viper/mapstructure/v2"
)

// Decode binds a raw config value (a decoded TOML tree) onto out, which must
// be a pointer to the plugin's config type. Unknown keys are rejected so that
// typos in plugin configuration fail loudly instead of being ignored.
func Decode(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
