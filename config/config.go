// Package config provides configuration management for DataWindow.
// It handles loading, saving, and validating application settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yllada/datawindow/common"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// Settings live in a YAML file in the user's config directory.
type Config struct {
	// Theme sets the color scheme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// WindowWidth is the default width of the main window.
	WindowWidth int `yaml:"window_width"`
	// WindowHeight is the default height of the main window.
	WindowHeight int `yaml:"window_height"`
	// ShowTray enables the system tray indicator.
	ShowTray bool `yaml:"show_tray"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogToFile mirrors log output into the config directory.
	LogToFile bool `yaml:"log_to_file"`

	// path is the file this configuration was loaded from or last saved to.
	path string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:        common.ThemeAuto,
		WindowWidth:  common.DefaultWindowWidth,
		WindowHeight: common.DefaultWindowHeight,
		ShowTray:     true,
		LogLevel:     "info",
		LogToFile:    false,
	}
}

// DefaultPath returns the location of the configuration file.
func DefaultPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, common.ConfigFileName), nil
}

// Load reads the configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path.
// A missing file is not an error: the defaults are returned and nothing is written.
func LoadFrom(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			config.path = path
			return config, nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	config := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrConfigLoad, path, err)
	}

	config.validate()
	config.path = path
	return config, nil
}

// validate replaces out-of-range values with usable ones.
func (c *Config) validate() {
	switch c.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		c.Theme = common.ThemeAuto
	}

	if c.WindowWidth < common.MinWindowWidth {
		c.WindowWidth = common.MinWindowWidth
	}
	if c.WindowHeight < common.MinWindowHeight {
		c.WindowHeight = common.MinWindowHeight
	}

	if _, err := common.ParseLogLevel(c.LogLevel); err != nil {
		c.LogLevel = "info"
	}
}

// Level returns the configured log level.
func (c *Config) Level() common.LogLevel {
	level, _ := common.ParseLogLevel(c.LogLevel)
	return level
}

// Path returns the file Save writes to, or "" for the default location.
func (c *Config) Path() string {
	return c.path
}

// SetPath binds the configuration to path for later saves.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Save writes the configuration back to the file it came from, or to the
// default location when it was never loaded or saved.
func (c *Config) Save() error {
	if c.path != "" {
		return c.SaveTo(c.path)
	}

	configDir, err := common.EnsureConfigDir()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}
	return c.SaveTo(filepath.Join(configDir, common.ConfigFileName))
}

// SaveTo writes the configuration to path, creating the directory if needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: serializing: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}
	c.path = path
	return nil
}
