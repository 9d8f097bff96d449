package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/steprepeat/pkg/layout"
	"github.com/matzehuels/steprepeat/pkg/render/styles"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// MaxCells is the largest grid a sink draws or lists item by item.
const MaxCells = 10_000

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	showMargin bool
	showLabels bool
	caption    *string
	unit       string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithMargin(show bool) SVGOption     { return func(r *svgRenderer) { r.showMargin = show } }
func WithLabels(show bool) SVGOption     { return func(r *svgRenderer) { r.showLabels = show } }

// WithCaption replaces the default "columns × rows = items" caption. An empty
// caption removes it.
func WithCaption(text string) SVGOption { return func(r *svgRenderer) { r.caption = &text } }

// WithUnit sets the unit suffix of the root width and height attributes
// ("mm", "in"), so viewers display the sheet at physical size.
func WithUnit(u string) SVGOption { return func(r *svgRenderer) { r.unit = u } }

// RenderSVG draws r at its real document size: the sheet, a dashed outline
// of the usable area and one rectangle per placed item. Grids larger than
// [MaxCells] are drawn as a single pattern-filled rectangle without labels.
func RenderSVG(r layout.Result, opts ...SVGOption) []byte {
	rr := newSVGRenderer(opts...)

	sheet := sheetOf(r)
	caption := Caption(r)
	if rr.caption != nil {
		caption = *rr.caption
	}
	totalHeight := sheet.H
	if caption != "" {
		totalHeight += styles.CaptionSpace(sheet)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.3f %.3f" width="%s%s" height="%s%s">`+"\n",
		sheet.W, totalHeight, units.FormatValue(sheet.W), rr.unit, units.FormatValue(totalHeight), rr.unit)

	rr.style.RenderDefs(&buf)
	rr.style.RenderSheet(&buf, sheet)
	if rr.showMargin {
		rr.style.RenderMargin(&buf, sheet)
	}

	if r.Count() > MaxCells {
		rr.style.RenderTiles(&buf, tilesOf(r))
	} else {
		items := buildItems(r)
		for _, it := range items {
			rr.style.RenderItem(&buf, it)
		}
		if rr.showLabels {
			for _, it := range items {
				rr.style.RenderLabel(&buf, it)
			}
		}
	}
	if caption != "" {
		rr.style.RenderCaption(&buf, sheet, caption)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.NewFlat(0), showMargin: true, showLabels: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Caption summarizes a result as "columns × rows = items".
func Caption(r layout.Result) string {
	return fmt.Sprintf("%d × %d = %d", r.MaxColumns, r.MaxRows, r.Count())
}

func sheetOf(r layout.Result) styles.Sheet {
	return styles.Sheet{W: r.DocumentWidthReal, H: r.DocumentHeightReal, Margin: r.DocumentMargin}
}

func tilesOf(r layout.Result) styles.Tiles {
	return styles.Tiles{
		X: r.DocumentMargin, Y: r.DocumentMargin,
		CellW: r.ItemWidth, CellH: r.ItemHeight,
		Columns: r.MaxColumns, Rows: r.MaxRows,
	}
}

func buildItems(r layout.Result) []styles.Item {
	cells := r.Cells()
	items := make([]styles.Item, 0, len(cells))
	for i, c := range cells {
		items = append(items, styles.Item{
			ID:    fmt.Sprintf("r%dc%d", c.Row, c.Column),
			Label: fmt.Sprintf("%d", i+1),
			X:     c.X, Y: c.Y,
			W: c.Width, H: c.Height,
			CX: c.CenterX(), CY: c.CenterY(),
			Alt: (c.Row+c.Column)%2 == 1,
		})
	}
	return items
}
