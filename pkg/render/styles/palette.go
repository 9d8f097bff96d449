package styles

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors of a preview.
type Palette struct {
	Background color.RGBA
	Sheet      color.RGBA
	Margin     color.RGBA
	Item       color.RGBA
	ItemAlt    color.RGBA
	Outline    color.RGBA
	Text       color.RGBA
}

// NewPalette derives a palette from seed. Every color shares one base hue so
// the preview stays readable whatever the seed.
func NewPalette(seed int64) Palette {
	r := rand.New(rand.NewSource(seed))
	hue := r.Float64() * 360
	sat := 0.30 + r.Float64()*0.25
	val := 0.85 + r.Float64()*0.10

	return Palette{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Sheet:      hsv(hue, 0.04, 0.98),
		Margin:     hsv(hue+180, 0.75, 0.80),
		Item:       hsv(hue, sat, val),
		ItemAlt:    hsv(hue+18, sat, val-0.08),
		Outline:    hsv(hue, 0.55, 0.35),
		Text:       hsv(hue, 0.60, 0.20),
	}
}

// hsv converts HSV to RGBA using go-colorful. Hue wraps; s and v clamp.
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, clamp(s, 0, 1), clamp(v, 0, 1))
	red, green, blue := c.RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Darken returns c with its HSV value reduced by amount.
func Darken(c color.RGBA, amount float64) color.RGBA {
	h, s, v := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsv()
	return hsv(h, s, v-amount)
}
