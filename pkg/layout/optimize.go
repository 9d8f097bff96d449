package layout

import (
	"math"

	"github.com/matzehuels/steprepeat/pkg/errors"
)

// MaxCount is the largest item count Optimize reports. Beyond it float64 can
// no longer tell neighboring counts apart, so the count would be a guess.
const MaxCount = 1 << 53

// Result is the outcome of packing one request.
//
// DocumentWidth and DocumentHeight hold the usable area left after the margin
// has been removed from both sides of each axis; the *Real fields keep the
// outer document size so renderers can draw the true canvas bounds.
type Result struct {
	DocumentWidthReal  float64 `json:"documentWidthReal"`
	DocumentHeightReal float64 `json:"documentHeightReal"`
	DocumentWidth      float64 `json:"documentWidth"`
	DocumentHeight     float64 `json:"documentHeight"`
	DocumentMargin     float64 `json:"documentMargin"`
	ItemWidth          float64 `json:"itemWidth"`
	ItemHeight         float64 `json:"itemHeight"`
	MaxColumns         int     `json:"maxColumns"`
	MaxRows            int     `json:"maxRows"`
}

// Count returns the number of items placed (rows × columns).
func (r Result) Count() int { return r.MaxRows * r.MaxColumns }

// Optimize computes the largest grid of whole items that fits req.
//
// Negative values are treated as their magnitude. A nil margin becomes
// [DefaultMargin]; a zero margin leaves the document untouched. The item size
// is checked before the margin so a zero item never reaches the fitting loop.
func Optimize(req Request) (Result, error) {
	n, err := req.normalize()
	if err != nil {
		return Result{}, err
	}

	if n.itemWidth == 0 {
		return Result{}, errors.NewField(errors.ErrCodeInvalidItemSize, FieldItemWidth, "item width must be greater than 0")
	}
	if n.itemHeight == 0 {
		return Result{}, errors.NewField(errors.ErrCodeInvalidItemSize, FieldItemHeight, "item height must be greater than 0")
	}

	res := Result{
		DocumentWidthReal:  n.width,
		DocumentHeightReal: n.height,
		DocumentWidth:      n.width,
		DocumentHeight:     n.height,
		DocumentMargin:     n.margin,
		ItemWidth:          n.itemWidth,
		ItemHeight:         n.itemHeight,
	}

	if n.margin != 0 {
		res.DocumentWidth -= 2 * n.margin
		res.DocumentHeight -= 2 * n.margin
		if res.DocumentWidth <= 0 {
			return Result{}, errors.NewField(errors.ErrCodeMarginExceedsDimension, AxisWidth,
				"margin %g leaves no usable width on a document %g wide", n.margin, n.width)
		}
		if res.DocumentHeight <= 0 {
			return Result{}, errors.NewField(errors.ErrCodeMarginExceedsDimension, AxisHeight,
				"margin %g leaves no usable height on a document %g high", n.margin, n.height)
		}
	}

	cols := math.Floor(res.DocumentWidth / res.ItemWidth)
	rows := math.Floor(res.DocumentHeight / res.ItemHeight)
	if !(cols <= MaxCount && rows <= MaxCount && cols*rows <= MaxCount) {
		return Result{}, errors.New(errors.ErrCodeTooManyItems,
			"a %g × %g item tiles a %g × %g area more than %d times", res.ItemWidth, res.ItemHeight,
			res.DocumentWidth, res.DocumentHeight, int64(MaxCount))
	}

	res.MaxColumns = fit(res.DocumentWidth, res.ItemWidth)
	res.MaxRows = fit(res.DocumentHeight, res.ItemHeight)
	return res, nil
}

// fit counts how many items of size fit in span, where an item that ends
// exactly on the boundary still fits. size must be > 0.
//
// The count grows one item at a time, testing (n+1)·size ≤ span rather than
// a running sum so rounding does not build up. The loop starts just below
// the floor estimate; the comparisons alone decide the result.
func fit(span, size float64) int {
	if span <= 0 {
		return 0
	}
	n := 0
	if est := math.Floor(span/size) - 1; est > 0 {
		n = int(est)
	}
	for n > 0 && float64(n)*size > span {
		n--
	}
	for float64(n+1)*size <= span {
		n++
	}
	return n
}
