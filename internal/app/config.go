package app

import (
	"errors"

	"github.com/vk/classnamecheck/internal/report"
)

// DefaultExtension is the source suffix selected by the walker.
const DefaultExtension = ".ts"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Root      string // traversal root
	Extension string // defaults to DefaultExtension
	Replace   bool   // rewrite mismatching files

	Color     report.ColorMode
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("Root is a required configuration field and cannot be empty")
	}
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if cfg.Color == "" {
		cfg.Color = report.ColorAlways
	}

	return &cfg, nil
}
