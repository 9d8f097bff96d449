package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/pipeline"
)

const appName = "steprepeat"

// Environment variables that override file values.
const (
	EnvUnit     = "STEPREPEAT_UNIT"
	EnvMargin   = "STEPREPEAT_MARGIN"
	EnvAddr     = "STEPREPEAT_ADDR"
	EnvLogLevel = "STEPREPEAT_LOG_LEVEL"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/steprepeat/config.toml
//  2. ~/.config/steprepeat/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	return finish(DefaultConfig())
}

// LoadFromFile reads configuration from a specific file path. A missing file
// is not an error.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return finish(DefaultConfig())
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader, applies environment
// overrides and validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse TOML")
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Unit: "mm",
		},
		Render: RenderConfig{
			Formats:    []string{pipeline.FormatSVG},
			Scale:      pipeline.DefaultScale,
			ShowMargin: true,
			ShowLabels: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvUnit); v != "" {
		cfg.Defaults.Unit = v
	}
	if v := os.Getenv(EnvMargin); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s=%q", EnvMargin, v)
		}
		cfg.Defaults.Margin = &m
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// SearchPaths returns the ordered list of config file paths to try.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
