// Package config provides configuration management for the squish CLI.
package config

import (
	"os"
	"path/filepath"
)

// Dir returns the squish config directory.
// Uses XDG_CONFIG_HOME/squish, defaulting to ~/.config/squish.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "squish"), nil
}
