package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/gogify/internal/gog"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, gog.DefaultSearchURL, cfg.API.SearchURL)
	assert.Equal(t, gog.DefaultProductURL, cfg.API.ProductURL)
	assert.Equal(t, gog.UserAgent, cfg.API.UserAgent)
	assert.Equal(t, 0, cfg.API.RequestsPerSecond)
	assert.Equal(t, "table", cfg.Defaults.Output)
	assert.Equal(t, "", cfg.Defaults.Platform)
	assert.Equal(t, 10, cfg.Defaults.Timeout)
	assert.False(t, cfg.Defaults.HumanReadable)
	assert.False(t, cfg.Defaults.Suppress)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, DirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("defaults:\n  output: json\n"), 0o644))

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Defaults.Output)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, `
api:
  requests_per_second: 4
defaults:
  platform: mac
  human_readable: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.API.RequestsPerSecond)
	assert.Equal(t, gog.DefaultSearchURL, cfg.API.SearchURL)
	assert.Equal(t, "mac", cfg.Defaults.Platform)
	assert.True(t, cfg.Defaults.HumanReadable)
	assert.Equal(t, "table", cfg.Defaults.Output)
	assert.Equal(t, 10, cfg.Defaults.Timeout)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "defaults: [unterminated")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad output",
			mutate:  func(c *Config) { c.Defaults.Output = "html" },
			wantErr: "defaults.output",
		},
		{
			name:    "bad platform",
			mutate:  func(c *Config) { c.Defaults.Platform = "osx" },
			wantErr: "defaults.platform",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Defaults.Timeout = 0 },
			wantErr: "defaults.timeout must be positive",
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.API.RequestsPerSecond = -1 },
			wantErr: "api.requests_per_second",
		},
		{
			name:    "non-http search url",
			mutate:  func(c *Config) { c.API.SearchURL = "ftp://example.com" },
			wantErr: "api.search_url must be an http or https URL",
		},
		{
			name:    "product url without host",
			mutate:  func(c *Config) { c.API.ProductURL = "https://" },
			wantErr: "api.product_url has no host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, Validate(nil))
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := Path()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "gogify", "config.yaml"), path)
}
