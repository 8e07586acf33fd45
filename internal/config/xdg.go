package config

import (
	"os"
	"path/filepath"
)

const appName = "squircles"

// XDGConfigHome is $XDG_CONFIG_HOME, falling back to ~/.config.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultInstructionsDir is where per-level instruction clips are looked up
// when no directory is configured.
func DefaultInstructionsDir() string {
	return filepath.Join(XDGConfigHome(), appName, "instructions")
}
