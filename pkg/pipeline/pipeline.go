// Package pipeline provides the layout → render pipeline for steprepeat.
//
// This package implements the complete flow that the CLI, the interactive
// editor and the preview server share. By centralizing it, every entry point
// snapshots inputs, selects an orientation, renders and caches the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: snapshot the inputs into a [layout.Request] and run the
//     orientation selector
//  2. Render: produce each requested format for the preferred candidate
//     (or every candidate when [Options.All] is set)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Width, opts.Height = layout.Value(330), layout.Value(488)
//	opts.ItemWidth, opts.ItemHeight = layout.Value(90), layout.Value(50)
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	outcome, err := runner.Layout(ctx, opts)
//	artifacts, err := runner.Render(ctx, outcome, opts)
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/steprepeat/pkg/cache"
	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/layout"
	"github.com/matzehuels/steprepeat/pkg/render/sink"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Editor, and Server
// =============================================================================

const (
	// DefaultScale is the default PNG resolution in pixels per document unit.
	DefaultScale = sink.DefaultPNGScale

	// MaxScale bounds the PNG resolution.
	MaxScale = 50.0

	// DefaultSeed is the default palette seed.
	DefaultSeed = int64(0)
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatText: true,
}

// FormatNames lists the supported formats in display order.
var FormatNames = []string{FormatSVG, FormatPNG, FormatJSON, FormatText}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout inputs. Nil means "not supplied"; all lengths share Unit.
	Width      *float64 `json:"width,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	Margin     *float64 `json:"margin,omitempty"`
	ItemWidth  *float64 `json:"item_width,omitempty"`
	ItemHeight *float64 `json:"item_height,omitempty"`
	Unit       string   `json:"unit,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Seed       int64    `json:"seed,omitempty"`
	ShowMargin bool     `json:"show_margin,omitempty"`
	ShowLabels bool     `json:"show_labels,omitempty"`
	All        bool     `json:"all,omitempty"` // render every candidate, not just the preferred one

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns options with every render default applied and no
// layout inputs.
func DefaultOptions() Options {
	return Options{
		Unit:       string(units.Default),
		Formats:    []string{FormatSVG},
		Scale:      DefaultScale,
		Seed:       DefaultSeed,
		ShowMargin: true,
		ShowLabels: true,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Outcome holds every candidate considered and the preferred one.
	Outcome layout.Outcome

	// Artifacts contains rendered outputs keyed by [ArtifactName].
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether artifacts came from the cache.
	CacheInfo CacheInfo
}

// Best returns the preferred candidate's result.
func (r *Result) Best() layout.Result { return r.Outcome.Best().Result }

// Stats contains pipeline execution statistics.
type Stats struct {
	Orientation layout.Orientation
	Columns     int
	Rows        int
	Items       int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ArtifactName returns the key of an artifact in [Result.Artifacts]. The
// preferred candidate's artifacts are keyed by format alone ("svg"); other
// candidates rendered with [Options.All] get an orientation prefix
// ("portrait.svg"). JSON covers the whole outcome and is always "json".
func ArtifactName(format string, o layout.Orientation, preferred bool) string {
	if preferred || format == FormatJSON {
		return format
	}
	return string(o) + "." + format
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list ("svg,png") and validates it.
func ParseFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	return formats, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the render options.
// Layout inputs are validated by the layout stage itself. This method is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()

	u, err := units.Parse(o.Unit)
	if err != nil {
		return err
	}
	o.Unit = string(u)

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !(o.Scale > 0) || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Request snapshots the layout inputs. The returned request shares no
// memory with o, so later edits to o cannot affect a run in progress.
func (o *Options) Request() layout.Request {
	return layout.Request{
		DocumentWidth:  o.Width,
		DocumentHeight: o.Height,
		DocumentMargin: o.Margin,
		ItemWidth:      o.ItemWidth,
		ItemHeight:     o.ItemHeight,
	}.Clone()
}

// SetRequest copies req into the layout inputs.
func (o *Options) SetRequest(req layout.Request) {
	c := req.Clone()
	o.Width, o.Height, o.Margin = c.DocumentWidth, c.DocumentHeight, c.DocumentMargin
	o.ItemWidth, o.ItemHeight = c.ItemWidth, c.ItemHeight
}

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(format string, orientation layout.Orientation) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:      format,
		Orientation: string(orientation),
		Unit:        o.Unit,
	}
	switch format {
	case FormatSVG:
		k.Seed, k.ShowMargin, k.ShowLabels = o.Seed, o.ShowMargin, o.ShowLabels
	case FormatPNG:
		k.Seed, k.ShowMargin, k.Scale = o.Seed, o.ShowMargin, o.Scale
	}
	return k
}

// String describes the layout inputs for log lines, e.g.
// "330×488 mm, margin 12.7, item 90×50".
func (o *Options) String() string {
	f := func(p *float64) string {
		if p == nil {
			return "?"
		}
		return units.FormatValue(*p)
	}
	margin := "default"
	if o.Margin != nil {
		margin = f(o.Margin)
	}
	return fmt.Sprintf("%s×%s %s, margin %s, item %s×%s",
		f(o.Width), f(o.Height), o.Unit, margin, f(o.ItemWidth), f(o.ItemHeight))
}
