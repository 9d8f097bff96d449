package styles

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestNewPaletteDeterministic(t *testing.T) {
	if NewPalette(7) != NewPalette(7) {
		t.Error("NewPalette(7) differs between calls")
	}
	if NewPalette(7) == NewPalette(8) {
		t.Error("NewPalette(7) == NewPalette(8)")
	}
}

func TestPaletteContrast(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		p := NewPalette(seed)
		if luma(p.Text) >= luma(p.Item) {
			t.Errorf("seed %d: text %v not darker than item %v", seed, p.Text, p.Item)
		}
		if p.Background != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("seed %d: background = %v, want white", seed, p.Background)
		}
	}
}

func luma(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want string
	}{
		{color.RGBA{255, 255, 255, 255}, "#ffffff"},
		{color.RGBA{0, 0, 0, 255}, "#000000"},
		{color.RGBA{1, 162, 255, 255}, "#01a2ff"},
	}
	for _, tt := range tests {
		if got := Hex(tt.c); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestHSVWrapsHue(t *testing.T) {
	if hsv(370, 0.5, 0.5) != hsv(10, 0.5, 0.5) {
		t.Error("hue 370 should equal hue 10")
	}
	if hsv(-10, 0.5, 0.5) != hsv(350, 0.5, 0.5) {
		t.Error("hue -10 should equal hue 350")
	}
}

func TestDarken(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if luma(Darken(c, 0.2)) >= luma(c) {
		t.Error("Darken() did not darken")
	}
}

func TestFlatMarginSkippedWhenZero(t *testing.T) {
	var buf bytes.Buffer
	NewFlat(1).RenderMargin(&buf, Sheet{W: 100, H: 100})
	if buf.Len() != 0 {
		t.Errorf("RenderMargin() wrote %q for a zero margin", buf.String())
	}
}

func TestFlatLabelEscapes(t *testing.T) {
	var buf bytes.Buffer
	NewFlat(1).RenderLabel(&buf, Item{ID: "r0c0", Label: "a<b&c", W: 50, H: 20, CX: 25, CY: 10})
	out := buf.String()
	if !strings.Contains(out, "a&lt;b&amp;c") {
		t.Errorf("label not escaped: %s", out)
	}
}

func TestFontSizeFits(t *testing.T) {
	it := Item{Label: "12", W: 90, H: 50}
	size := FontSize(it)
	if size <= 0 || size > it.H {
		t.Errorf("FontSize() = %v for a %vx%v item", size, it.W, it.H)
	}
	long := Item{Label: strings.Repeat("x", 40), W: 90, H: 50}
	if FontSize(long) >= size {
		t.Error("longer labels should get smaller fonts")
	}
}
