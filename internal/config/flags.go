// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/undobuf/internal/logger"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  string
	Version         bool
	LogLevel        string
	LogFilePath     string
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string
	EnableFiles     string
	DisableFiles    string
	MaxHistory      int
	StrictReplace   bool
	SystemClipboard bool
	Copy            bool
	Dump            bool
}

// NewFlags defines the flags on a new FlagSet named name.
func NewFlags(name string, handling flag.ErrorHandling) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, handling)}
	fs := f.fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName))
	fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	fs.StringVar(&f.EnableFiles, "log-files", "", "Comma-separated list of files to enable - Overrides config file")
	fs.StringVar(&f.DisableFiles, "log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	fs.IntVar(&f.MaxHistory, "max-history", -1, "Maximum undo entries, 0 for unlimited - Overrides config file")
	fs.BoolVar(&f.StrictReplace, "strict-replace", false, "Reject invalid Replace calls instead of ignoring them")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", false, "Use system clipboard instead of internal clipboard")
	fs.BoolVar(&f.Copy, "copy", false, "Copy the final text to the clipboard")
	fs.BoolVar(&f.Dump, "dump", false, "Print the remaining undo history")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	// Visit only processes flags that were actually set
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "max-history":
			if f.MaxHistory >= 0 {
				cfg.Editor.MaxHistory = f.MaxHistory
			}
		case "strict-replace":
			cfg.Editor.StrictReplace = f.StrictReplace
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(f.DisableFiles)
		}
	})
}

// splitCommaList splits a comma-separated list, dropping blanks.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
