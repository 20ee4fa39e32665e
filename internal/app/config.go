package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vk/supertoml/internal/formatter"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FilePath string // source TOML document
	Table    string // table to resolve

	OutputFormat string
	LogFormat    string
	LogLevel     string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("FilePath is a required configuration field and cannot be empty")
	}
	if cfg.Table == "" {
		return nil, errors.New("Table is a required configuration field and cannot be empty")
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = formatter.Names()[0]
	}
	if !slices.Contains(formatter.Names(), cfg.OutputFormat) {
		return nil, fmt.Errorf("invalid output format '%s'", cfg.OutputFormat)
	}

	return &cfg, nil
}
