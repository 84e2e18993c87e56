// Package config defines the configuration for the tokenid command-line tool
// and provides validation helpers.
package config

import (
	"fmt"
	"strings"

	"github.com/alanyoungcy/panoptic-go/tokenid"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by PANOPTIC_* environment
// variables.
type Config struct {
	// LogLevel selects the slog level: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFormat selects the slog handler: json or text.
	LogFormat string `toml:"log_format"`
	// Vegoid is written into the pool reference of identifiers built by
	// the tool.
	Vegoid int `toml:"vegoid"`
	// RegistryPath points at a [[pool]] TOML file layered over the
	// built-in pools. Empty keeps the built-ins only.
	RegistryPath string `toml:"registry_path"`
}

// Defaults returns a Config populated with reasonable default values.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "json",
		Vegoid:    tokenid.DefaultVegoid,
	}
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats enumerates the accepted values for Config.LogFormat.
var validLogFormats = map[string]bool{
	"json": true,
	"text": true,
}

// Validate checks Config for obviously invalid values and returns a combined
// error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}
	if !validLogFormats[strings.ToLower(c.LogFormat)] {
		errs = append(errs, fmt.Sprintf("unknown log_format %q (valid: json, text)", c.LogFormat))
	}
	if c.Vegoid < 0 || c.Vegoid > 255 {
		errs = append(errs, fmt.Sprintf("vegoid must be 0-255, got %d", c.Vegoid))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
