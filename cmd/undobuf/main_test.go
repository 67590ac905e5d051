package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")

	code := run([]string{"-config", cfgPath, "-logfile", filepath.Join(t.TempDir(), "test.log"), "-dump"}, &out)

	assert.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "PASS undo operation")
	assert.Contains(t, out.String(), "Lines: 1, Words: 1, Graphemes: 4, Bytes: 4")
	assert.Contains(t, out.String(), "Hello, world")
	assert.Contains(t, out.String(), "All tests passed!")
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 0, run([]string{"-version"}, &out))
	assert.Equal(t, "undobuf 0.1.0\n", out.String())
}

func TestRun_BadFlag(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, run([]string{"-no-such-flag"}, &out))
}

func TestRun_CopyReportsLength(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()

	code := run([]string{"-config", filepath.Join(dir, "missing.toml"), "-logfile", filepath.Join(dir, "test.log"), "-copy"}, &out)

	assert.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "Copied 4 bytes to clipboard")
}
