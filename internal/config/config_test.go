package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFile_Values(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
log_file = "-"
disabled_tags = ["event"]

[editor]
max_history = 25
strict_replace = true
system_clipboard = true
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, "-", cfg.Logger.LogFilePath)
	assert.Equal(t, []string{"event"}, cfg.Logger.DisabledTags)
	assert.Equal(t, EditorConfig{MaxHistory: 25, StrictReplace: true, SystemClipboard: true}, cfg.Editor)
}

func TestLoadFile_InvalidValuesReset(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = ""
[editor]
max_history = -3
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoadFile_ParseError(t *testing.T) {
	path := writeConfig(t, "[editor\nmax_history = ")
	cfg, err := LoadFile(path)
	assert.Error(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoad_FlagOverrides(t *testing.T) {
	path := writeConfig(t, `
[editor]
max_history = 25
`)
	flags := NewFlags("test", flag.ContinueOnError)
	rest, err := flags.Parse([]string{
		"-max-history", "3",
		"-strict-replace",
		"-loglevel", "warn",
		"-log-tags", "editor, history,",
		"extra",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"extra"}, rest)

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Editor.MaxHistory)
	assert.True(t, cfg.Editor.StrictReplace)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"editor", "history"}, cfg.Logger.EnabledTags)
}

func TestLoad_UnsetFlagsKeepFileValues(t *testing.T) {
	path := writeConfig(t, `
[editor]
max_history = 25
strict_replace = true
`)
	flags := NewFlags("test", flag.ContinueOnError)
	_, err := flags.Parse(nil)
	require.NoError(t, err)

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Editor.MaxHistory)
	assert.True(t, cfg.Editor.StrictReplace)
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Equal(t, []string{"a", "b"}, splitCommaList(" a , ,b"))
}
