// Package config loads the boxlayout configuration file.
//
// The file is TOML:
//
//	[viewport]
//	width = 120
//	height = 40
//	responsive = true
//
//	[log]
//	level = "debug"
//	file = "/tmp/boxlayout.log"
//
//	[output]
//	format = "json"
//
// Command-line flags take precedence over every value here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const appName = "boxlayout"

// Output formats for CLI reports.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config is the decoded configuration file.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Log      Log      `toml:"log"`
	Output   Output   `toml:"output"`
}

// Viewport sets the grid used when no size flags are given. Zero width or
// height means "detect from the terminal".
type Viewport struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Responsive bool `toml:"responsive"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Appends debug output to this file when set
}

type Output struct {
	Format string `toml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Output: Output{Format: OutputTable},
	}
}

// Load reads the file at path over the defaults. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or DefaultPath when path is empty. A missing
// default file yields Default(); a missing explicit file is an error.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns the config location using the XDG standard
// (~/.config/boxlayout/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("viewport: size must not be negative, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Output.Format {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("output: unknown format %q (want %s or %s)", c.Output.Format, OutputTable, OutputJSON)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log: %w", err)
	}
	return level, nil
}
