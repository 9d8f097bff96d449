package config

import (
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/preset"
	"github.com/matzehuels/steprepeat/pkg/units"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Unit() != units.Millimeter {
		t.Errorf("Unit() = %q, want mm", cfg.Unit())
	}
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() = %v, want info", cfg.LogLevel())
	}
	if cfg.Defaults.Margin != nil {
		t.Error("default margin should be unset")
	}
}

func TestValidate(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name    string
		edit    func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unit alias", func(c *Config) { c.Defaults.Unit = "inches" }, false},
		{"bad unit", func(c *Config) { c.Defaults.Unit = "furlong" }, true},
		{"nan margin", func(c *Config) { c.Defaults.Margin = &nan }, true},
		{"bad format", func(c *Config) { c.Render.Formats = []string{"svg", "gif"} }, true},
		{"zero scale", func(c *Config) { c.Render.Scale = 0 }, true},
		{"huge scale", func(c *Config) { c.Render.Scale = 1000 }, true},
		{"addr without port", func(c *Config) { c.Server.Addr = "localhost" }, true},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, true},
		{"known document", func(c *Config) { c.Defaults.Document = "sra3+" }, false},
		{"unknown document", func(c *Config) { c.Defaults.Document = "A0" }, true},
		{"item as document", func(c *Config) { c.Defaults.Document = "business-card-eu" }, true},
		{"known item", func(c *Config) { c.Defaults.Item = "business-card-eu" }, false},
		{"document as item", func(c *Config) { c.Defaults.Item = "A4" }, true},
		{"bad preset", func(c *Config) {
			c.Presets = []preset.Preset{{Name: "x", Kind: preset.Item, Width: -1, Height: 2}}
		}, true},
		{"custom item default", func(c *Config) {
			c.Presets = []preset.Preset{{Name: "flyer-dl", Kind: preset.Item, Width: 99, Height: 210}}
			c.Defaults.Item = "flyer-dl"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %s, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestRegistryOverridesBuiltin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Presets = []preset.Preset{{Name: "a4", Kind: preset.Document, Width: 1, Height: 2, Unit: "in"}}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}
	p, err := reg.Get("A4")
	if err != nil {
		t.Fatal(err)
	}
	if p.Width != 1 || p.Unit != units.Inch {
		t.Errorf("A4 = %+v, want the config override", p)
	}

	// The process-wide registry stays untouched.
	if p, _ := preset.Get("A4"); p.Width != 210 {
		t.Errorf("default registry A4 width = %v, want 210", p.Width)
	}
}

func TestAccessorsFallBack(t *testing.T) {
	cfg := &Config{Defaults: DefaultsConfig{Unit: "bogus"}, Log: LogConfig{Level: "bogus"}}
	if cfg.Unit() != units.Default {
		t.Errorf("Unit() = %q, want default", cfg.Unit())
	}
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() = %v, want info", cfg.LogLevel())
	}
}
