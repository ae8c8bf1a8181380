package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/steviee/gogify/internal/catalog"
	"github.com/steviee/gogify/internal/gog"
	"github.com/steviee/gogify/internal/output"
)

// Config represents the user configuration for gogify.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// APIConfig holds the GOG API endpoints and client settings.
type APIConfig struct {
	SearchURL         string `yaml:"search_url"`
	ProductURL        string `yaml:"product_url"`
	UserAgent         string `yaml:"user_agent"`
	RequestsPerSecond int    `yaml:"requests_per_second"`
}

// DefaultsConfig holds default values for command line options.
type DefaultsConfig struct {
	Output        string `yaml:"output"`
	Platform      string `yaml:"platform"`
	Timeout       int    `yaml:"timeout"`
	HumanReadable bool   `yaml:"human_readable"`
	Suppress      bool   `yaml:"suppress"`
}

// DefaultTimeoutSeconds is the per-request timeout used when nothing else is configured.
const DefaultTimeoutSeconds = 10

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			SearchURL:         gog.DefaultSearchURL,
			ProductURL:        gog.DefaultProductURL,
			UserAgent:         gog.UserAgent,
			RequestsPerSecond: 0,
		},
		Defaults: DefaultsConfig{
			Output:   output.Table.String(),
			Platform: "",
			Timeout:  DefaultTimeoutSeconds,
		},
	}
}

// Load reads the configuration file at path on top of the defaults.
// An empty path selects the default location, where a missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = Path()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			slog.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	slog.Debug("loaded config file", "path", path)
	return cfg, nil
}

// Validate checks that every configured value is usable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := validateURL("api.search_url", cfg.API.SearchURL); err != nil {
		return err
	}
	if err := validateURL("api.product_url", cfg.API.ProductURL); err != nil {
		return err
	}

	if cfg.API.RequestsPerSecond < 0 {
		return fmt.Errorf("api.requests_per_second must not be negative, got %d", cfg.API.RequestsPerSecond)
	}

	if _, err := output.ParseFormat(cfg.Defaults.Output); err != nil {
		return fmt.Errorf("defaults.output: %w", err)
	}

	if _, err := catalog.ParseFilter(cfg.Defaults.Platform); err != nil {
		return fmt.Errorf("defaults.platform: %w", err)
	}

	if cfg.Defaults.Timeout <= 0 {
		return fmt.Errorf("defaults.timeout must be positive, got %d", cfg.Defaults.Timeout)
	}

	return nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http or https URL, got %q", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host: %q", key, raw)
	}
	return nil
}
