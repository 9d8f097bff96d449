// Package render turns sheet layouts into previews.
//
// # Overview
//
// The optimizer in [layout] only decides how many items fit. This package
// tree shows the answer:
//
//   - [sink]: output formats (SVG, PNG, JSON, text)
//   - [styles]: visual styles and seeded color palettes
//
// # Rendering a Result
//
//	r, err := layout.Optimize(layout.NewRequest(330, 488, 12.7, 90, 50))
//	svg := sink.RenderSVG(r, sink.WithStyle(styles.NewFlat(42)), sink.WithUnit("mm"))
//	png, err := sink.RenderPNG(r, sink.WithScale(4))
//
// Most callers go through [pipeline.Runner], which renders every requested
// format for the preferred orientation and caches the artifacts.
//
// [layout]: github.com/matzehuels/steprepeat/pkg/layout
// [sink]: github.com/matzehuels/steprepeat/pkg/render/sink
// [styles]: github.com/matzehuels/steprepeat/pkg/render/styles
// [pipeline.Runner]: github.com/matzehuels/steprepeat/pkg/pipeline.Runner
package render
