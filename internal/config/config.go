// Package config loads editor configuration from a TOML file.
//
// A missing config file is not an error; Load falls back to the
// defaults. A file that exists but fails to parse is an error, so a
// typo never silently resets the configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultHistoryLimit bounds the undo history when the config does not
// say otherwise.
const DefaultHistoryLimit = 100

// Config is the full editor configuration.
type Config struct {
	Editor  Editor    `toml:"editor"`
	Session Session   `toml:"session"`
	Keymap  []Binding `toml:"keymap"`
}

// Editor configures the editing engine.
type Editor struct {
	// HistoryLimit caps the number of undo entries.
	HistoryLimit int `toml:"history_limit"`

	// ReadOnly rejects all mutations.
	ReadOnly bool `toml:"read_only"`

	// InitScript is the path of the Lua init script. Empty disables
	// script loading.
	InitScript string `toml:"init_script"`
}

// Session configures session persistence.
type Session struct {
	// Enabled turns on saving the last file and selection.
	Enabled bool `toml:"enabled"`

	// Path overrides the session file location.
	Path string `toml:"path"`
}

// Binding is one user keymap entry, e.g.
//
//	[[keymap]]
//	chord = "Ctrl+d"
//	action = "edit.delete"
type Binding struct {
	Chord  string `toml:"chord"`
	Action string `toml:"action"`
	Param  any    `toml:"param,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			HistoryLimit: DefaultHistoryLimit,
		},
		Session: Session{
			Enabled: true,
		},
	}
}

// DefaultPath returns the standard config file location,
// $XDG_CONFIG_HOME/upcode/config.toml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "upcode", "config.toml"), nil
}

// Load reads and validates the config file at path. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the editor cannot run
// with.
func (c Config) Validate() error {
	if c.Editor.HistoryLimit < 1 {
		return fmt.Errorf("editor.history_limit must be at least 1, got %d", c.Editor.HistoryLimit)
	}
	for i, b := range c.Keymap {
		if b.Chord == "" {
			return fmt.Errorf("keymap[%d]: chord must not be empty", i)
		}
		if b.Action == "" {
			return fmt.Errorf("keymap[%d]: action must not be empty", i)
		}
	}
	return nil
}
