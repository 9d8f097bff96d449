package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/steprepeat/pkg/config"
	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/input"
	"github.com/matzehuels/steprepeat/pkg/layout"
	"github.com/matzehuels/steprepeat/pkg/pipeline"
	"github.com/matzehuels/steprepeat/pkg/preset"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// layoutInputs holds the raw text of the layout inputs as typed on the
// command line, in the editor or in a query string. Every length accepts an
// arithmetic expression and an optional unit suffix ("210mm", "8.5in",
// "(330-10)/2").
type layoutInputs struct {
	Width      string
	Height     string
	Margin     string
	ItemWidth  string
	ItemHeight string
	Unit       string
	Document   string // document preset name
	Item       string // item preset name
}

// addFlags registers the input flags on cmd.
func (in *layoutInputs) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&in.Width, "width", "", "document width (expression, optional unit suffix)")
	f.StringVar(&in.Height, "height", "", "document height")
	f.StringVar(&in.Margin, "margin", "", "margin on every side (default 12.7mm)")
	f.StringVar(&in.ItemWidth, "item-width", "", "item width")
	f.StringVar(&in.ItemHeight, "item-height", "", "item height")
	f.StringVarP(&in.Unit, "unit", "u", "", "unit for bare numbers and output: mm, cm, in, pt, px")
	f.StringVarP(&in.Document, "document", "d", "", "document size preset (see 'steprepeat presets')")
	f.StringVarP(&in.Item, "item", "i", "", "item size preset")

	_ = cmd.RegisterFlagCompletionFunc("unit", completeUnits)
	_ = cmd.RegisterFlagCompletionFunc("document", completePresets(preset.Document))
	_ = cmd.RegisterFlagCompletionFunc("item", completePresets(preset.Item))
}

// options resolves the inputs against cfg into pipeline options.
//
// Precedence per value: explicit length, then explicit preset, then the
// configured preset, then the configured value. Presets are only consulted
// for a dimension pair when neither side was typed. Render settings come
// from cfg.
func (in layoutInputs) options(cfg *config.Config) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	opts.Formats = append([]string(nil), cfg.Render.Formats...)
	opts.Scale = cfg.Render.Scale
	opts.Seed = cfg.Render.PaletteSeed
	opts.ShowMargin = cfg.Render.ShowMargin
	opts.ShowLabels = cfg.Render.ShowLabels

	unit := cfg.Unit()
	if in.Unit != "" {
		u, err := units.Parse(in.Unit)
		if err != nil {
			return opts, err
		}
		unit = u
	}
	opts.Unit = string(unit)

	reg, err := cfg.Registry()
	if err != nil {
		return opts, err
	}

	opts.Width, opts.Height, err = resolvePair(reg, preset.Document, in.Width, in.Height, in.Document, cfg.Defaults.Document,
		layout.FieldDocumentWidth, layout.FieldDocumentHeight, unit)
	if err != nil {
		return opts, err
	}
	opts.ItemWidth, opts.ItemHeight, err = resolvePair(reg, preset.Item, in.ItemWidth, in.ItemHeight, in.Item, cfg.Defaults.Item,
		layout.FieldItemWidth, layout.FieldItemHeight, unit)
	if err != nil {
		return opts, err
	}

	if opts.Margin, err = length(layout.FieldDocumentMargin, in.Margin, unit); err != nil {
		return opts, err
	}
	if opts.Margin == nil {
		opts.Margin = defaultMargin(cfg, unit)
	}
	return opts, nil
}

// resolvePair resolves a width/height pair from typed lengths or a preset.
func resolvePair(reg *preset.Registry, kind preset.Kind, w, h, name, fallback, wField, hField string, unit units.Unit) (*float64, *float64, error) {
	width, err := length(wField, w, unit)
	if err != nil {
		return nil, nil, err
	}
	height, err := length(hField, h, unit)
	if err != nil {
		return nil, nil, err
	}
	if width != nil || height != nil {
		return width, height, nil
	}

	if name == "" {
		name = fallback
	}
	if name == "" {
		return nil, nil, nil
	}
	p, err := reg.Lookup(name, kind)
	if err != nil {
		return nil, nil, err
	}
	pw, ph := p.Size(unit)
	return layout.Value(pw), layout.Value(ph), nil
}

// length parses one optional length and tags failures with the field name.
func length(field, s string, unit units.Unit) (*float64, error) {
	v, err := input.Length(s, unit)
	if err != nil {
		return nil, &errors.Error{
			Code:    errors.GetCode(err),
			Message: field + ": " + errors.UserMessage(err),
			Field:   field,
		}
	}
	return v, nil
}

// defaultMargin returns the configured margin, or nil to let the optimizer
// apply its own default. The optimizer default is a millimeter figure, so
// other units get it converted explicitly.
func defaultMargin(cfg *config.Config, unit units.Unit) *float64 {
	if m := cfg.Defaults.Margin; m != nil {
		return layout.Value(units.Convert(*m, cfg.Unit(), unit))
	}
	if unit == units.Millimeter {
		return nil
	}
	return layout.Value(units.Convert(layout.DefaultMargin, units.Millimeter, unit))
}

// =============================================================================
// Completion
// =============================================================================

func completeUnits(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return units.Names(), cobra.ShellCompDirectiveNoFileComp
}

func completePresets(kind preset.Kind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(kind), cobra.ShellCompDirectiveNoFileComp
	}
}

func completeFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return pipeline.FormatNames, cobra.ShellCompDirectiveNoFileComp
}
