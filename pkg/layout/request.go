package layout

import (
	"math"

	"github.com/matzehuels/steprepeat/pkg/errors"
)

// DefaultMargin is applied when a request carries no margin at all.
// An explicit zero margin is kept as zero.
const DefaultMargin = 12.7

// Field names reported by MISSING_FIELD errors.
const (
	FieldDocumentWidth  = "documentWidth"
	FieldDocumentHeight = "documentHeight"
	FieldDocumentMargin = "documentMargin"
	FieldItemWidth      = "itemWidth"
	FieldItemHeight     = "itemHeight"
)

// Axis names reported by MARGIN_EXCEEDS_DIMENSION errors.
const (
	AxisWidth  = "width"
	AxisHeight = "height"
)

// Request holds the five inputs of one optimization. A nil field means the
// value was never supplied, which is different from zero.
type Request struct {
	DocumentWidth  *float64 `json:"documentWidth,omitempty"`
	DocumentHeight *float64 `json:"documentHeight,omitempty"`
	DocumentMargin *float64 `json:"documentMargin,omitempty"`
	ItemWidth      *float64 `json:"itemWidth,omitempty"`
	ItemHeight     *float64 `json:"itemHeight,omitempty"`
}

// NewRequest builds a fully populated request.
func NewRequest(width, height, margin, itemWidth, itemHeight float64) Request {
	return Request{
		DocumentWidth:  Value(width),
		DocumentHeight: Value(height),
		DocumentMargin: Value(margin),
		ItemWidth:      Value(itemWidth),
		ItemHeight:     Value(itemHeight),
	}
}

// Value returns a pointer to a copy of v, for populating Request fields.
func Value(v float64) *float64 { return &v }

// Clone returns a deep copy of r so the copy can be edited independently.
func (r Request) Clone() Request {
	return Request{
		DocumentWidth:  clonePtr(r.DocumentWidth),
		DocumentHeight: clonePtr(r.DocumentHeight),
		DocumentMargin: clonePtr(r.DocumentMargin),
		ItemWidth:      clonePtr(r.ItemWidth),
		ItemHeight:     clonePtr(r.ItemHeight),
	}
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Value(*p)
}

// normalized is a request with every field present and non-negative.
type normalized struct {
	width, height, margin, itemWidth, itemHeight float64
}

// normalize checks presence in a fixed order, applies the default margin and
// flips signs.
func (r Request) normalize() (normalized, error) {
	required := []struct {
		name string
		v    *float64
	}{
		{FieldDocumentWidth, r.DocumentWidth},
		{FieldDocumentHeight, r.DocumentHeight},
		{FieldItemWidth, r.ItemWidth},
		{FieldItemHeight, r.ItemHeight},
	}
	for _, f := range required {
		if f.v == nil {
			return normalized{}, errors.NewField(errors.ErrCodeMissingField, f.name, "%s is required", f.name)
		}
	}

	margin := DefaultMargin
	if r.DocumentMargin != nil {
		margin = *r.DocumentMargin
	}

	values := []struct {
		name string
		v    float64
	}{
		{FieldDocumentWidth, *r.DocumentWidth},
		{FieldDocumentHeight, *r.DocumentHeight},
		{FieldDocumentMargin, margin},
		{FieldItemWidth, *r.ItemWidth},
		{FieldItemHeight, *r.ItemHeight},
	}
	for _, f := range values {
		if err := errors.ValidateNumber(f.name, f.v); err != nil {
			return normalized{}, err
		}
	}

	n := normalized{
		width:      math.Abs(*r.DocumentWidth),
		height:     math.Abs(*r.DocumentHeight),
		margin:     math.Abs(margin),
		itemWidth:  math.Abs(*r.ItemWidth),
		itemHeight: math.Abs(*r.ItemHeight),
	}
	return n, nil
}
