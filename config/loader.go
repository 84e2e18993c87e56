package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies PANOPTIC_* environment variable overrides, and
// returns the final Config. An empty path skips the file and starts from the
// defaults alone.
//
// The returned Config has NOT been validated; callers should invoke
// Config.Validate() before using it.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known PANOPTIC_* environment variables and
// overwrites the corresponding Config fields when a variable is set.
func applyEnvOverrides(cfg *Config) {
	// ── Logging ──
	setStr(&cfg.LogLevel, "PANOPTIC_LOG_LEVEL")
	setStr(&cfg.LogFormat, "PANOPTIC_LOG_FORMAT")

	// ── Identifier defaults ──
	setInt(&cfg.Vegoid, "PANOPTIC_VEGOID")

	// ── Pool registry ──
	setStr(&cfg.RegistryPath, "PANOPTIC_REGISTRY_PATH")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only assigns when the variable is set and
// parses cleanly, so absent or malformed overrides leave the config alone.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
