package pipeline

import (
	"fmt"

	"github.com/matzehuels/steprepeat/pkg/layout"
	"github.com/matzehuels/steprepeat/pkg/render/sink"
	"github.com/matzehuels/steprepeat/pkg/render/styles"
)

// artifact is one output the render stage must produce.
type artifact struct {
	name      string
	format    string
	candidate layout.Candidate // zero for outcome-wide formats
}

// plan lists the artifacts opts asks for, in format order. The preferred
// candidate always comes first within a format.
func plan(o layout.Outcome, opts Options) []artifact {
	best := o.Best()
	var out []artifact
	for _, format := range opts.Formats {
		if format == FormatJSON {
			out = append(out, artifact{name: FormatJSON, format: format})
			continue
		}
		out = append(out, artifact{name: format, format: format, candidate: best})
		if !opts.All {
			continue
		}
		for _, c := range o.Candidates {
			if c.Preferred {
				continue
			}
			out = append(out, artifact{
				name:      ArtifactName(format, c.Orientation, false),
				format:    format,
				candidate: c,
			})
		}
	}
	return out
}

// Render generates output artifacts in the requested formats. It performs
// no caching; see [Runner.Render] for the cached variant.
func Render(o layout.Outcome, opts Options) (map[string][]byte, error) {
	if len(o.Candidates) == 0 {
		return nil, fmt.Errorf("render: outcome has no candidates")
	}
	artifacts := make(map[string][]byte)
	for _, a := range plan(o, opts) {
		data, err := renderOne(o, a, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", a.name, err)
		}
		artifacts[a.name] = data
	}
	return artifacts, nil
}

// renderOne dispatches a single artifact to its sink.
func renderOne(o layout.Outcome, a artifact, opts Options) ([]byte, error) {
	res := a.candidate.Result
	switch a.format {
	case FormatSVG:
		return sink.RenderSVG(res, buildSVGOptions(opts)...), nil
	case FormatPNG:
		return sink.RenderPNG(res, buildPNGOptions(opts)...)
	case FormatText:
		return []byte(sink.RenderText(res)), nil
	case FormatJSON:
		return sink.RenderJSON(o, sink.WithJSONUnit(opts.Unit))
	default:
		return nil, fmt.Errorf("unsupported format: %s", a.format)
	}
}

// buildSVGOptions translates pipeline options to SVG sink options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	return []sink.SVGOption{
		sink.WithStyle(styles.NewFlat(opts.Seed)),
		sink.WithMargin(opts.ShowMargin),
		sink.WithLabels(opts.ShowLabels),
		sink.WithUnit(opts.Unit),
	}
}

func buildPNGOptions(opts Options) []sink.PNGOption {
	return []sink.PNGOption{
		sink.WithScale(opts.Scale),
		sink.WithPalette(styles.NewPalette(opts.Seed)),
		sink.WithPNGMargin(opts.ShowMargin),
	}
}
