// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration of an application that
// creates a device.
// It is usually read from a TOML file:
//
//	backend = "opengl"
//	search_paths = ["~/.local/lib/rhi"]
//	debug = true
//	vsync_interval = 1
//	log_level = "debug"
//
//	[window]
//	width = 1280
//	height = 720
//	title = "rhi"
type Config struct {
	Backend       string       `toml:"backend"`
	SearchPaths   []string     `toml:"search_paths"`
	Debug         bool         `toml:"debug"`
	VSyncInterval int          `toml:"vsync_interval"`
	LogLevel      string       `toml:"log_level"`
	Window        WindowConfig `toml:"window"`
}

// WindowConfig is the configuration of the main window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// DefaultConfig returns the configuration used for fields
// that a configuration file omits.
func DefaultConfig() Config {
	return Config{
		Backend:       "opengl",
		VSyncInterval: 1,
		LogLevel:      "info",
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "rhi",
		},
	}
}

// ReadConfig decodes a TOML configuration from r.
// Fields not present in r keep their DefaultConfig values.
// Unknown fields are an error. Search paths starting with
// "~" are expanded to the user's home directory.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("rhi: config: %w", err)
	}
	for i, p := range cfg.SearchPaths {
		x, err := homedir.Expand(p)
		if err != nil {
			return Config{}, fmt.Errorf("rhi: config: search path %q: %w", p, err)
		}
		cfg.SearchPaths[i] = x
	}
	if cfg.Backend == "" {
		return Config{}, fmt.Errorf("rhi: config: empty backend name")
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return Config{}, fmt.Errorf("rhi: config: invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads the configuration file at path.
// path may start with "~".
func LoadConfigFile(path string) (Config, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("rhi: config: %w", err)
	}
	f, err := os.Open(p)
	if err != nil {
		return Config{}, fmt.Errorf("rhi: config: %w", err)
	}
	defer f.Close()
	return ReadConfig(f)
}

// Level returns the slog level named by LogLevel.
// An empty LogLevel means slog.LevelInfo.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("rhi: config: log_level: %w", err)
	}
	return l, nil
}

// Loader returns a PluginLoader that searches the
// configured paths.
func (c *Config) Loader() *PluginLoader {
	return &PluginLoader{SearchPaths: c.SearchPaths}
}
