// Package config handles the XDG configuration directory and the optional
// TOML config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "ltask"

	// ConfigFile is the optional TOML config filename inside the config dir.
	ConfigFile = "config.toml"

	// DefaultDataFile is the task file path, relative to the working
	// directory, when neither the config file nor --file overrides it.
	DefaultDataFile = "tasks.json"
)

// Config holds configuration paths and settings.
// File values are overridden by CLI flags during dispatch.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// DataFile is the path of the JSON task file.
	DataFile string `toml:"data_file"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"quiet"`

	// NoColor disables status colors in list output.
	NoColor bool `toml:"no_color"`

	// Debug enables debug logging. Flag-only, never persisted.
	Debug bool `toml:"-"`
}

// New creates a Config from defaults and, if present, the config.toml in
// the given directory. If configDir is empty, uses XDG_CONFIG_HOME/ltask
// or $HOME/.config/ltask.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:      dir,
		DataFile: DefaultDataFile,
	}

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
		cfg.Dir = dir
		if cfg.DataFile == "" {
			cfg.DataFile = DefaultDataFile
		}
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}
