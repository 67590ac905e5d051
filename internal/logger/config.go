// Package logger provides configurable logging capabilities
package logger

import (
	"log/slog"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log (e.g., "debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Use empty or "-" for stderr.
	LogFilePath string `toml:"log_file"`

	// EnabledTags only logs messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags prevents logging messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs messages originating from these packages (if non-empty).
	// Package name is the immediate directory name (e.g., "editor", "history").
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages prevents logging from these packages. Overrides EnabledPackages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs messages originating from these filenames (if non-empty).
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles prevents logging from these filenames. Overrides EnabledFiles.
	DisabledFiles []string `toml:"disabled_files"`

	// --- Internal processed fields ---
	level            slog.Level
	enabledTags      mapset.Set[string]
	disabledTags     mapset.Set[string]
	enabledPackages  mapset.Set[string]
	disabledPackages mapset.Set[string]
	enabledFiles     mapset.Set[string]
	disabledFiles    mapset.Set[string]
}

// NewConfig creates a new Config with default values
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// ParseLevel maps a level name to a slog level. Unknown names give info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// process parses string levels/lists into efficient internal formats.
func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)

	c.enabledTags = toSet(c.EnabledTags)
	c.disabledTags = toSet(c.DisabledTags)
	c.enabledPackages = toSet(c.EnabledPackages)
	c.disabledPackages = toSet(c.DisabledPackages)
	c.enabledFiles = toSet(c.EnabledFiles)
	c.disabledFiles = toSet(c.DisabledFiles)
}

// toSet lowercases items into a set; nil when nothing remains.
func toSet(items []string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, item := range items {
		if item != "" {
			set.Add(strings.ToLower(item))
		}
	}
	if set.Cardinality() == 0 {
		return nil // Use nil set if empty, simplifies checks later
	}
	return set
}
