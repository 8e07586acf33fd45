// Package config reads the optional TOML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the TOML file. Every field is optional; nil means unset.
type FileConfig struct {
	Window WindowConfig `toml:"window"`
	Audio  AudioConfig  `toml:"audio"`
	Game   GameConfig   `toml:"game"`
}

type WindowConfig struct {
	Width  *int `toml:"width"`
	Height *int `toml:"height"`
}

type AudioConfig struct {
	Mute   *bool    `toml:"mute"`
	Volume *float64 `toml:"volume"`
	// Instructions is a directory of expl01.wav .. expl15.wav clips.
	Instructions *string `toml:"instructions"`
}

type GameConfig struct {
	Level *int   `toml:"level"`
	Seed  *int64 `toml:"seed"`
}

// LoadConfig reads the config at path. A missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Template is the commented file written by `squircles config`.
func Template(width, height int, volume float64) string {
	return fmt.Sprintf(`# squircles configuration
# Uncomment a value to enable it. CLI flags override config values.

[window]
# width = %d
# height = %d

[audio]
# mute = false
# volume = %.2f           # Linear gain, 1 is unchanged
# instructions = %q       # Directory of expl01.wav .. expl15.wav

[game]
# level = 1               # Level to start on
# seed = 0                # Random seed, 0 picks one from the clock
`, width, height, volume, DefaultInstructionsDir())
}
