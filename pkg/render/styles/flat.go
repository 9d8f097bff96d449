package styles

import (
	"bytes"
	"fmt"
)

// Flat draws solid rectangles with a thin outline.
type Flat struct {
	Palette Palette
}

// NewFlat returns a flat style colored from seed.
func NewFlat(seed int64) Flat { return Flat{Palette: NewPalette(seed)} }

func (Flat) RenderDefs(buf *bytes.Buffer) {}

func (f Flat) RenderSheet(buf *bytes.Buffer, s Sheet) {
	fmt.Fprintf(buf, `  <rect class="sheet" x="0" y="0" width="%.3f" height="%.3f" fill="%s" stroke="%s" stroke-width="%.3f"/>`+"\n",
		s.W, s.H, Hex(f.Palette.Sheet), Hex(f.Palette.Outline), s.Stroke()*2)
}

func (f Flat) RenderMargin(buf *bytes.Buffer, s Sheet) {
	if s.Margin <= 0 {
		return
	}
	dash := s.Stroke() * 6
	fmt.Fprintf(buf, `  <rect class="margin" x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="%s" stroke-width="%.3f" stroke-dasharray="%.3f %.3f"/>`+"\n",
		s.Margin, s.Margin, s.UsableW(), s.UsableH(), Hex(f.Palette.Margin), s.Stroke(), dash, dash)
}

func (f Flat) RenderItem(buf *bytes.Buffer, it Item) {
	fill := f.Palette.Item
	if it.Alt {
		fill = f.Palette.ItemAlt
	}
	fmt.Fprintf(buf, `  <rect class="item" id="%s" x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="%s" stroke="%s" stroke-width="%.3f"/>`+"\n",
		it.ID, it.X, it.Y, it.W, it.H, Hex(fill), Hex(f.Palette.Outline), min(it.W, it.H)/100)
}

func (f Flat) RenderTiles(buf *bytes.Buffer, t Tiles) {
	if t.Columns <= 0 || t.Rows <= 0 {
		return
	}
	fmt.Fprintf(buf, `  <defs><pattern id="tile" x="%.3f" y="%.3f" width="%.3f" height="%.3f" patternUnits="userSpaceOnUse">`,
		t.X, t.Y, t.CellW, t.CellH)
	fmt.Fprintf(buf, `<rect width="%.3f" height="%.3f" fill="%s" stroke="%s" stroke-width="%.3f"/></pattern></defs>`+"\n",
		t.CellW, t.CellH, Hex(f.Palette.Item), Hex(f.Palette.Outline), min(t.CellW, t.CellH)/100)
	fmt.Fprintf(buf, `  <rect class="items" x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="url(#tile)"/>`+"\n",
		t.X, t.Y, t.W(), t.H())
}

func (f Flat) RenderLabel(buf *bytes.Buffer, it Item) {
	if it.Label == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="label" x="%.3f" y="%.3f" font-family="sans-serif" font-size="%.3f" fill="%s" text-anchor="middle" dominant-baseline="central">`,
		it.CX, it.CY, FontSize(it), Hex(f.Palette.Text))
	escapeText(buf, it.Label)
	buf.WriteString("</text>\n")
}

func (f Flat) RenderCaption(buf *bytes.Buffer, s Sheet, text string) {
	size := CaptionSize(s)
	fmt.Fprintf(buf, `  <text class="caption" x="%.3f" y="%.3f" font-family="sans-serif" font-size="%.3f" fill="%s" text-anchor="middle">`,
		s.W/2, s.H+size*1.4, size, Hex(f.Palette.Text))
	escapeText(buf, text)
	buf.WriteString("</text>\n")
}

var _ Style = Flat{}
