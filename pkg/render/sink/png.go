package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/steprepeat/pkg/layout"
	"github.com/matzehuels/steprepeat/pkg/render/styles"
)

const (
	// DefaultPNGScale is the default number of pixels per document unit.
	DefaultPNGScale = 4.0
	// MaxPNGSide caps either side of the raster; larger requests are scaled
	// down to fit.
	MaxPNGSide = 8192
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	palette    styles.Palette
	showMargin bool
}

// WithScale sets the number of pixels per document unit.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPalette sets the colors used for the raster.
func WithPalette(p styles.Palette) PNGOption {
	return func(r *pngRenderer) { r.palette = p }
}

// WithPNGMargin toggles the dashed margin outline.
func WithPNGMargin(show bool) PNGOption {
	return func(r *pngRenderer) { r.showMargin = show }
}

// RenderPNG rasterizes the same scene as [RenderSVG], without labels or
// caption, and encodes it as PNG. Grids larger than [MaxCells] are drawn as
// a filled area ruled with item boundaries.
func RenderPNG(r layout.Result, opts ...PNGOption) ([]byte, error) {
	pr := pngRenderer{scale: DefaultPNGScale, palette: styles.NewPalette(0), showMargin: true}
	for _, opt := range opts {
		opt(&pr)
	}
	if !(pr.scale > 0) {
		return nil, fmt.Errorf("png scale must be positive, got %g", pr.scale)
	}

	scale := fitScale(r.DocumentWidthReal, r.DocumentHeightReal, pr.scale)
	w := max(1, int(math.Round(r.DocumentWidthReal*scale)))
	h := max(1, int(math.Round(r.DocumentHeightReal*scale)))

	p := pr.palette
	img := imaging.New(w, h, p.Sheet)
	px := func(v float64) int { return int(math.Round(v * scale)) }
	border := max(1, px(min(r.DocumentWidthReal, r.DocumentHeightReal)/400))

	if r.Count() > MaxCells {
		drawGridLines(img, r, px, p)
	} else {
		for row := 0; row < r.MaxRows; row++ {
			y := r.DocumentMargin + float64(row)*r.ItemHeight
			for col := 0; col < r.MaxColumns; col++ {
				x := r.DocumentMargin + float64(col)*r.ItemWidth
				rect := image.Rect(px(x), px(y), px(x+r.ItemWidth), px(y+r.ItemHeight))
				fill := p.Item
				if (row+col)%2 == 1 {
					fill = p.ItemAlt
				}
				fillRect(img, rect, fill)
				strokeRect(img, rect, p.Outline, 1)
			}
		}
	}

	if pr.showMargin && r.DocumentMargin > 0 {
		m := px(r.DocumentMargin)
		dashedRect(img, image.Rect(m, m, w-m, h-m), p.Margin, border, border*6)
	}
	strokeRect(img, img.Bounds(), p.Outline, border)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawGridLines fills the grid area and rules item boundaries onto it. When
// items are narrower than a pixel only every step-th boundary is visited, so
// the work is bounded by the raster size rather than the item count.
func drawGridLines(img draw.Image, r layout.Result, px func(float64) int, p styles.Palette) {
	m := r.DocumentMargin
	x0, y0 := px(m), px(m)
	x1 := px(m + float64(r.MaxColumns)*r.ItemWidth)
	y1 := px(m + float64(r.MaxRows)*r.ItemHeight)
	fillRect(img, image.Rect(x0, y0, x1, y1), p.Item)

	for col, step := 0, lineStep(r.MaxColumns, x1-x0); col <= r.MaxColumns; col += step {
		x := px(m + float64(col)*r.ItemWidth)
		fillRect(img, image.Rect(x, y0, x+1, y1), p.Outline)
	}
	for row, step := 0, lineStep(r.MaxRows, y1-y0); row <= r.MaxRows; row += step {
		y := px(m + float64(row)*r.ItemHeight)
		fillRect(img, image.Rect(x0, y, x1, y+1), p.Outline)
	}
}

// lineStep returns how many boundaries to advance so that at most about one
// line is drawn per pixel.
func lineStep(count, pixels int) int {
	if pixels <= 0 || count <= pixels {
		return 1
	}
	return count / pixels
}

// fitScale shrinks scale so neither side exceeds MaxPNGSide.
func fitScale(w, h, scale float64) float64 {
	if longest := max(w, h) * scale; longest > MaxPNGSide {
		return scale * MaxPNGSide / longest
	}
	return scale
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// strokeRect draws the inside border of r, t pixels thick.
func strokeRect(img draw.Image, r image.Rectangle, c color.Color, t int) {
	if r.Empty() {
		return
	}
	t = min(t, r.Dx(), r.Dy())
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// dashedRect draws the outline of r as dashes of length dash.
func dashedRect(img draw.Image, r image.Rectangle, c color.Color, t, dash int) {
	if r.Empty() || dash <= 0 {
		return
	}
	for x := r.Min.X; x < r.Max.X; x += 2 * dash {
		end := min(x+dash, r.Max.X)
		fillRect(img, image.Rect(x, r.Min.Y, end, r.Min.Y+t), c)
		fillRect(img, image.Rect(x, r.Max.Y-t, end, r.Max.Y), c)
	}
	for y := r.Min.Y; y < r.Max.Y; y += 2 * dash {
		end := min(y+dash, r.Max.Y)
		fillRect(img, image.Rect(r.Min.X, y, r.Min.X+t, end), c)
		fillRect(img, image.Rect(r.Max.X-t, y, r.Max.X, end), c)
	}
}
