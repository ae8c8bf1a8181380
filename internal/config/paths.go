package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirName is the directory holding gogify configuration.
	DirName = "gogify"

	// FileName is the configuration file name.
	FileName = "config.yaml"
)

// Dir returns the gogify configuration directory.
// It honours XDG_CONFIG_HOME and falls back to ~/.config/gogify.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configHome, DirName), nil
}

// Path returns the path of the default configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
