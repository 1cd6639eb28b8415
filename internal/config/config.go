package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dbtea/dbtea/internal/keymap"
	"github.com/dbtea/dbtea/internal/models"
)

// Config holds all application configuration
type Config struct {
	Navigation NavigationConfig `mapstructure:"navigation"`
	UI         UIConfig         `mapstructure:"ui"`
	History    HistoryConfig    `mapstructure:"history"`
	Logging    LoggingConfig    `mapstructure:"logging"`

	// Keymap maps scope name to chord-to-action-name overrides.
	Keymap map[string]map[string]string `mapstructure:"keymap"`
}

type NavigationConfig struct {
	// PaneModifier composes directional pane-focus chords: shift, ctrl
	// or alt.
	PaneModifier string `mapstructure:"pane_modifier"`
	// DefaultEditingMode is vim or cursor.
	DefaultEditingMode string `mapstructure:"default_editing_mode"`
}

type UIConfig struct {
	Theme                string `mapstructure:"theme"`
	PanelWidthRatio      int    `mapstructure:"panel_width_ratio"`
	MaxCellDisplayLength int    `mapstructure:"max_cell_display_length"`
}

type HistoryConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxEntries int  `mapstructure:"max_entries"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load loads configuration from files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths in priority order
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "dbtea"))
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("navigation.pane_modifier", "shift")
	v.SetDefault("navigation.default_editing_mode", "vim")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.panel_width_ratio", 30)
	v.SetDefault("ui.max_cell_display_length", 100)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 1000)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	// Read config (it's okay if file doesn't exist, we have defaults)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// PaneModifier parses the configured pane modifier, defaulting to shift.
func (c *Config) PaneModifier() (models.PaneModifier, error) {
	switch c.Navigation.PaneModifier {
	case "", "shift":
		return models.PaneModShift, nil
	case "ctrl":
		return models.PaneModCtrl, nil
	case "alt":
		return models.PaneModAlt, nil
	}
	return models.PaneModShift, fmt.Errorf("unknown pane_modifier %q", c.Navigation.PaneModifier)
}

// EditingMode parses the configured default editing mode.
func (c *Config) EditingMode() (models.EditingMode, error) {
	switch c.Navigation.DefaultEditingMode {
	case "", "vim":
		return models.EditingVim, nil
	case "cursor":
		return models.EditingCursor, nil
	}
	return models.EditingVim, fmt.Errorf("unknown default_editing_mode %q", c.Navigation.DefaultEditingMode)
}

// BuildKeymap produces the merged key table: user overrides overlaid on
// the defaults, then pane-focus chords composed at lowest priority.
// Collisions between composed chords and explicit bindings are returned
// for the caller to report; they are never fatal.
func (c *Config) BuildKeymap() (*keymap.Table, []keymap.Collision, error) {
	overlay := keymap.NewTable()
	for scopeName, bindings := range c.Keymap {
		scope, err := keymap.ParseScope(scopeName)
		if err != nil {
			return nil, nil, fmt.Errorf("keymap: %w", err)
		}
		for chord, actionName := range bindings {
			action, err := keymap.ParseAction(actionName)
			if err != nil {
				return nil, nil, fmt.Errorf("keymap %s.%s: %w", scopeName, chord, err)
			}
			overlay.Bind(scope, chord, action)
		}
	}

	mod, err := c.PaneModifier()
	if err != nil {
		return nil, nil, err
	}
	overlay.SetPaneModifier(mod)

	merged := keymap.Merge(keymap.Defaults(), overlay)
	collisions := merged.ComposePaneChords()
	return merged, collisions, nil
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "dbtea"), nil
}
