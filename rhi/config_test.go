// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
backend = "opengl"
search_paths = ["~/lib/rhi", "/opt/rhi"]
debug = true
vsync_interval = 0
log_level = "debug"

[window]
width = 800
height = 600
title = "test"
`

func TestReadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	cfg, err := ReadConfig(strings.NewReader(testConfig))
	require.NoError(t, err)
	assert.Equal(t, "opengl", cfg.Backend)
	assert.Equal(t, []string{filepath.Join(home, "lib/rhi"), "/opt/rhi"}, cfg.SearchPaths)
	assert.True(t, cfg.Debug)
	assert.Zero(t, cfg.VSyncInterval)
	assert.Equal(t, WindowConfig{800, 600, "test"}, cfg.Window)
	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	assert.Equal(t, cfg.SearchPaths, cfg.Loader().SearchPaths)
}

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig(strings.NewReader(`backend = "null"`))
	require.NoError(t, err)
	want := DefaultConfig()
	want.Backend = "null"
	assert.Equal(t, want, cfg)
}

func TestReadConfigErrors(t *testing.T) {
	for _, s := range [...]string{
		`backend = `,
		`unknown = 1`,
		`backend = ""`,
		"[window]\nwidth = 0",
		`log_level = "loud"`,
	} {
		_, err := ReadConfig(strings.NewReader(s))
		assert.Error(t, err, s)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rhi.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
