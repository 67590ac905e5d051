// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/undobuf/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Logger config under [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	MaxHistory      int  `toml:"max_history"`      // 0 keeps every entry
	StrictReplace   bool `toml:"strict_replace"`   // Reject invalid Replace calls
	SystemClipboard bool `toml:"system_clipboard"` // Copy to the OS clipboard
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			MaxHistory:      DefaultMaxHistory,
			StrictReplace:   DefaultStrictReplace,
			SystemClipboard: SystemClipboard,
		},
	}
}

// LoadFile reads a TOML file on top of the defaults. A missing file is not
// an error and yields the defaults.
func LoadFile(filePath string) (*Config, error) {
	cfg := NewDefaultConfig()
	if filePath == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return NewDefaultConfig(), fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	cfg.validate()
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.MaxHistory < 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// DefaultPath returns the config file location under the user config dir,
// or "" when that dir is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// Load merges defaults, the config file (or the default path) and flag overrides.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	cfg, err := LoadFile(effectivePath)
	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}
