// Package sink provides output format renderers for sheet layouts.
//
// # Overview
//
// Sinks take a computed [layout.Result] (or, for JSON, the whole
// [layout.Outcome]) and produce bytes. None of them change the layout: they
// only draw what the optimizer decided.
//
// # Supported Formats
//
//   - SVG ([RenderSVG]): vector output at real document size, with the
//     margin drawn as a dashed outline, numbered items and a caption
//   - PNG ([RenderPNG]): the same scene rasterized in-process
//   - JSON ([RenderJSON]): every candidate with its cells, for external tools
//   - Text ([RenderText]): an ASCII sketch for terminals
//
// # SVG Rendering
//
// [RenderSVG] accepts functional options:
//
//	svg := sink.RenderSVG(result,
//	    sink.WithStyle(styles.NewFlat(42)),
//	    sink.WithUnit("mm"),
//	    sink.WithLabels(false),
//	)
//
// Coordinates are document units; with [WithUnit] the root element carries a
// physical width and height so the file prints at 1:1.
//
// # PNG Rendering
//
// [RenderPNG] draws directly into an image buffer and encodes it with
// imaging; no external converter is needed. [WithScale] sets pixels per
// document unit, and rasters wider than [MaxPNGSide] are scaled down.
// Labels and the caption are not rasterized.
//
// # JSON Export
//
// [RenderJSON] is the interchange format. Each candidate holds its optimizer
// result, count and utilization; [WithJSONCells] controls whether every
// placed cell is listed.
//
// # Large Grids
//
// No sink draws or lists more than [MaxCells] items one by one. Above it SVG
// fills the grid with a repeating pattern, PNG draws grid lines from row and
// column arithmetic, and JSON leaves out the cell list and sets
// cellsOmitted. Output size then depends on the sheet, not the item count.
//
// [layout.Result]: github.com/matzehuels/steprepeat/pkg/layout.Result
// [layout.Outcome]: github.com/matzehuels/steprepeat/pkg/layout.Outcome
package sink
