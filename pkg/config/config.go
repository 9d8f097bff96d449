// Package config loads steprepeat's TOML configuration.
//
// A config file is optional. When present it supplies defaults for the CLI
// flags, rendering options, the preview server address and extra size
// presets:
//
//	[defaults]
//	unit = "mm"
//	margin = 5
//	document = "SRA3+"
//	item = "business-card-eu"
//
//	[render]
//	formats = ["svg", "png"]
//	scale = 4
//
//	[server]
//	addr = ":8080"
//
//	[log]
//	level = "info"
//
//	[[presets]]
//	name = "flyer-dl"
//	kind = "item"
//	width = 99
//	height = 210
package config

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/pipeline"
	"github.com/matzehuels/steprepeat/pkg/preset"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// Config is the root configuration.
type Config struct {
	Defaults DefaultsConfig  `toml:"defaults"`
	Render   RenderConfig    `toml:"render"`
	Server   ServerConfig    `toml:"server"`
	Log      LogConfig       `toml:"log"`
	Presets  []preset.Preset `toml:"presets"`
}

// DefaultsConfig supplies values for inputs the user leaves out.
type DefaultsConfig struct {
	Unit string `toml:"unit"`
	// Margin is nil unless set, leaving the optimizer's own default in
	// charge.
	Margin   *float64 `toml:"margin"`
	Document string   `toml:"document"`
	Item     string   `toml:"item"`
}

// RenderConfig controls preview output.
type RenderConfig struct {
	Formats     []string `toml:"formats"`
	Scale       float64  `toml:"scale"`
	PaletteSeed int64    `toml:"palette_seed"`
	ShowMargin  bool     `toml:"show_margin"`
	ShowLabels  bool     `toml:"show_labels"`
}

// ServerConfig configures `steprepeat serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Validate checks every section and returns the first problem as an
// INVALID_CONFIG error.
func (c *Config) Validate() error {
	if _, err := units.Parse(c.Defaults.Unit); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults.unit")
	}
	if m := c.Defaults.Margin; m != nil && (math.IsNaN(*m) || math.IsInf(*m, 0)) {
		return errors.New(errors.ErrCodeInvalidConfig, "defaults.margin must be a finite number")
	}

	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.formats")
	}
	if !(c.Render.Scale > 0) || c.Render.Scale > pipeline.MaxScale {
		return errors.New(errors.ErrCodeInvalidConfig,
			"render.scale must be in (0, %g], got %g", pipeline.MaxScale, c.Render.Scale)
	}

	if err := errors.ValidateAddr(c.Server.Addr); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}

	reg, err := c.Registry()
	if err != nil {
		return err
	}
	if name := c.Defaults.Document; name != "" {
		if _, err := reg.Lookup(name, preset.Document); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults.document")
		}
	}
	if name := c.Defaults.Item; name != "" {
		if _, err := reg.Lookup(name, preset.Item); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults.item")
		}
	}
	return nil
}

// Registry returns a preset registry holding the built-ins plus every
// [[presets]] entry. Config presets replace built-ins of the same name.
func (c *Config) Registry() (*preset.Registry, error) {
	reg := preset.NewRegistry()
	for _, p := range c.Presets {
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Unit returns the parsed default unit, falling back to millimeters.
func (c *Config) Unit() units.Unit {
	u, err := units.Parse(c.Defaults.Unit)
	if err != nil {
		return units.Default
	}
	return u
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
