// Package config loads the user's TOML configuration (keybindings and
// theme overrides) from the XDG config directory, merging it over
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "termkit/config.toml"

// Config is the user-facing subset of toolkit configuration: keybindings
// and theme overrides. Everything else (widget layout, window geometry)
// is runtime state, not persisted configuration, per spec §6.
type Config struct {
	Appearance  Appearance  `toml:"appearance"`
	Keybindings Keybindings `toml:"keybindings"`
}

// Appearance holds the theme-affecting settings a user can override.
type Appearance struct {
	Theme           string `toml:"theme"`            // theme name; only the built-in default theme exists, other names are not resolved
	ScrollbackLines int    `toml:"scrollback_lines"` // parsed and stored only; not passed to ecma48.WithScrollbackLimit
}

// Keybindings maps an action name to one or more key chords, in the same
// shape as the reference config so chord strings ("ctrl+b", "shift+tab")
// parse with the same rules.
type Keybindings struct {
	Global map[string][]string `toml:"global"`
}

// Default returns the built-in configuration used when no user file
// exists or a section is missing.
func Default() *Config {
	return &Config{
		Appearance: Appearance{
			Theme:           "",
			ScrollbackLines: 2000,
		},
		Keybindings: Keybindings{
			Global: map[string][]string{
				"quit":          {"ctrl+q"},
				"next_window":   {"tab"},
				"prev_window":   {"shift+tab"},
				"toggle_menu":   {"f10"},
				"close_window":  {"ctrl+w"},
			},
		},
	}
}

// Load reads the user config file from the XDG config directory, merging
// it over Default. A missing file is not an error: Load writes out the
// default config so subsequent runs have something to edit, matching the
// reference's create-default-on-first-run behavior.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return createDefault()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	fillMissing(cfg)
	return cfg, nil
}

func createDefault() (*Config, error) {
	cfg := Default()

	path, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return nil, fmt.Errorf("write default config: %w", err)
	}
	return cfg, nil
}

// fillMissing backfills zero-valued sections of a user-supplied config
// from the built-in defaults, so a config file that only overrides the
// theme does not lose the default keybindings.
func fillMissing(cfg *Config) {
	def := Default()
	if cfg.Appearance.ScrollbackLines <= 0 {
		cfg.Appearance.ScrollbackLines = def.Appearance.ScrollbackLines
	}
	if cfg.Keybindings.Global == nil {
		cfg.Keybindings.Global = def.Keybindings.Global
	} else {
		for action, chords := range def.Keybindings.Global {
			if _, ok := cfg.Keybindings.Global[action]; !ok {
				cfg.Keybindings.Global[action] = chords
			}
		}
	}
}
