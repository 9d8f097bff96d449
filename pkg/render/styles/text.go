package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.35
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
)

// FontSize picks a label size that fits inside it, in document units.
func FontSize(it Item) float64 { return fontSizeFor(it.W, it.H, len(it.Label)) }

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return min(byHeight, byWidth)
}

// CaptionSize returns the caption font size for a sheet.
func CaptionSize(s Sheet) float64 { return min(s.W, s.H) / 24 }

// CaptionSpace returns the vertical room reserved below the sheet for a
// caption.
func CaptionSpace(s Sheet) float64 { return CaptionSize(s) * 2 }

func escapeText(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}
