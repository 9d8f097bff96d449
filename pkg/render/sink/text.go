package sink

import (
	"math"
	"strings"

	"github.com/matzehuels/steprepeat/pkg/layout"
)

// DefaultTextWidth is the default number of columns of a text preview.
const DefaultTextWidth = 48

// TextOption configures text rendering via [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	width int
}

// WithTextWidth sets the preview width in characters, frame excluded.
func WithTextWidth(w int) TextOption { return func(r *textRenderer) { r.width = w } }

// RenderText draws r as an ASCII grid for terminals. The sheet is sampled
// on a character grid with a 2:1 cell aspect: '.' marks the margin, '#' and
// '=' alternate between neighboring items and blanks are unused space.
func RenderText(r layout.Result, opts ...TextOption) string {
	tr := textRenderer{width: DefaultTextWidth}
	for _, opt := range opts {
		opt(&tr)
	}

	w, h := r.DocumentWidthReal, r.DocumentHeightReal
	if !(w > 0) || !(h > 0) || tr.width <= 0 {
		return ""
	}
	cols := tr.width
	rows := max(1, int(math.Round(float64(cols)*h/w/2)))
	stepX, stepY := w/float64(cols), h/float64(rows)

	var b strings.Builder
	b.Grow((cols + 3) * (rows + 2))
	frame := "+" + strings.Repeat("-", cols) + "+\n"
	b.WriteString(frame)
	for j := 0; j < rows; j++ {
		b.WriteByte('|')
		y := (float64(j) + 0.5) * stepY
		for i := 0; i < cols; i++ {
			x := (float64(i) + 0.5) * stepX
			b.WriteByte(sample(r, x, y))
		}
		b.WriteString("|\n")
	}
	b.WriteString(frame)
	return b.String()
}

// sample returns the character for the document point (x, y).
func sample(r layout.Result, x, y float64) byte {
	m := r.DocumentMargin
	if x < m || y < m || x > r.DocumentWidthReal-m || y > r.DocumentHeightReal-m {
		return '.'
	}
	col := int(math.Floor((x - m) / r.ItemWidth))
	row := int(math.Floor((y - m) / r.ItemHeight))
	if col >= r.MaxColumns || row >= r.MaxRows {
		return ' '
	}
	if (row+col)%2 == 1 {
		return '='
	}
	return '#'
}
