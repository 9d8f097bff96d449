// Package styles draws the pieces of a sheet preview.
//
// A [Style] writes SVG fragments for the sheet, its margin and each placed
// item. [Flat] is the only style today; it colors everything from a seeded
// [Palette].
package styles

import "bytes"

// Style defines the visual appearance of a sheet preview.
type Style interface {
	// RenderDefs writes SVG <defs> content (patterns, markers).
	RenderDefs(buf *bytes.Buffer)
	// RenderSheet writes the outer document rectangle.
	RenderSheet(buf *bytes.Buffer, s Sheet)
	// RenderMargin writes the outline of the usable area.
	RenderMargin(buf *bytes.Buffer, s Sheet)
	// RenderItem writes the shape of one placed item.
	RenderItem(buf *bytes.Buffer, it Item)
	// RenderTiles writes a whole grid of identical items as one shape.
	RenderTiles(buf *bytes.Buffer, t Tiles)
	// RenderLabel writes an item's label text.
	RenderLabel(buf *bytes.Buffer, it Item)
	// RenderCaption writes a line of text below the sheet.
	RenderCaption(buf *bytes.Buffer, s Sheet, text string)
}

// Sheet is the document being drawn, in document units.
type Sheet struct {
	W, H   float64 // real document size
	Margin float64
}

// UsableW returns the width inside the margin.
func (s Sheet) UsableW() float64 { return s.W - 2*s.Margin }

// UsableH returns the height inside the margin.
func (s Sheet) UsableH() float64 { return s.H - 2*s.Margin }

// Stroke returns a line width proportional to the sheet.
func (s Sheet) Stroke() float64 { return min(s.W, s.H) / 400 }

// Item contains all data needed to draw a single placed item.
type Item struct {
	ID         string  // "r<row>c<col>"
	Label      string  // Display text
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
	Alt        bool    // Checkerboard parity
}

// Tiles is a grid of identical items drawn as a repeating pattern.
type Tiles struct {
	X, Y          float64 // top-left corner of the grid
	CellW, CellH  float64 // size of one item
	Columns, Rows int
}

// W returns the width covered by the grid.
func (t Tiles) W() float64 { return float64(t.Columns) * t.CellW }

// H returns the height covered by the grid.
func (t Tiles) H() float64 { return float64(t.Rows) * t.CellH }
