package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	require := require.New(t)

	cfg := Defaults()
	require.Equal("info", cfg.LogLevel)
	require.Equal("json", cfg.LogFormat)
	require.Equal(4, cfg.Vegoid)
	require.Empty(cfg.RegistryPath)
	require.NoError(cfg.Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	require := require.New(t)

	cfg, err := Load("")
	require.NoError(err)
	require.Equal(Defaults(), *cfg)
}

func TestLoadFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
log_level = "debug"
vegoid = 9
registry_path = "pools.toml"
`
	require.NoError(os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(err)
	require.Equal("debug", cfg.LogLevel)
	require.Equal("json", cfg.LogFormat) // untouched by the file
	require.Equal(9, cfg.Vegoid)
	require.Equal("pools.toml", cfg.RegistryPath)
}

func TestLoadMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(err)
}

func TestEnvOverrides(t *testing.T) {
	require := require.New(t)

	t.Setenv("PANOPTIC_LOG_LEVEL", "warn")
	t.Setenv("PANOPTIC_LOG_FORMAT", "text")
	t.Setenv("PANOPTIC_VEGOID", "200")
	t.Setenv("PANOPTIC_REGISTRY_PATH", "/etc/panoptic/pools.toml")

	cfg, err := Load("")
	require.NoError(err)
	require.Equal("warn", cfg.LogLevel)
	require.Equal("text", cfg.LogFormat)
	require.Equal(200, cfg.Vegoid)
	require.Equal("/etc/panoptic/pools.toml", cfg.RegistryPath)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(os.WriteFile(path, []byte(`log_level = "debug"`), 0o644))

	t.Setenv("PANOPTIC_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(err)
	require.Equal("error", cfg.LogLevel)
}

func TestEnvOverrideMalformedInt(t *testing.T) {
	require := require.New(t)

	t.Setenv("PANOPTIC_VEGOID", "not-a-number")

	cfg, err := Load("")
	require.NoError(err)
	require.Equal(Defaults().Vegoid, cfg.Vegoid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(*Config) {},
		},
		{
			name:   "uppercase level accepted",
			mutate: func(c *Config) { c.LogLevel = "DEBUG" },
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "log_level",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "log_format",
		},
		{
			name:    "vegoid too large",
			mutate:  func(c *Config) { c.Vegoid = 256 },
			wantErr: "vegoid",
		},
		{
			name:    "vegoid negative",
			mutate:  func(c *Config) { c.Vegoid = -1 },
			wantErr: "vegoid",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			cfg := Defaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(err)
				return
			}
			require.Error(err)
			require.Contains(err.Error(), tc.wantErr)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	require := require.New(t)

	cfg := Config{LogLevel: "loud", LogFormat: "yaml", Vegoid: 300}
	err := cfg.Validate()
	require.Error(err)
	require.Contains(err.Error(), "log_level")
	require.Contains(err.Error(), "log_format")
	require.Contains(err.Error(), "vegoid")
}
