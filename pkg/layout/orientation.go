package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/steprepeat/pkg/errors"
)

// Orientation tags a candidate layout.
type Orientation string

const (
	// Square is used when the document's width equals its height.
	Square Orientation = "square"
	// Landscape places the document's long side horizontally.
	Landscape Orientation = "landscape"
	// Portrait places the document's long side vertically.
	Portrait Orientation = "portrait"
)

// String implements fmt.Stringer.
func (o Orientation) String() string { return string(o) }

// Candidate is one optimized orientation.
type Candidate struct {
	Orientation Orientation `json:"orientation"`
	Result      Result      `json:"result"`
	Preferred   bool        `json:"preferred"`
}

// Outcome holds the candidates considered for a document. A square document
// has exactly one candidate; any other document has a landscape candidate
// followed by a portrait candidate. Exactly one candidate is preferred.
type Outcome struct {
	Candidates []Candidate `json:"candidates"`
	Preferred  Orientation `json:"preferred"`
}

// Best returns the preferred candidate.
func (o Outcome) Best() Candidate {
	for _, c := range o.Candidates {
		if c.Orientation == o.Preferred {
			return c
		}
	}
	return Candidate{}
}

// Get returns the result for the given orientation, if it was computed.
func (o Outcome) Get(orientation Orientation) (Result, bool) {
	for _, c := range o.Candidates {
		if c.Orientation == orientation {
			return c.Result, true
		}
	}
	return Result{}, false
}

// IsSquare reports whether the outcome came from a square document.
func (o Outcome) IsSquare() bool {
	return len(o.Candidates) == 1 && o.Candidates[0].Orientation == Square
}

// SelectOrientation optimizes a document in the orientation(s) it admits and
// marks the one that holds the most items.
//
// When width == height the document is optimized once, unchanged, and tagged
// [Square]. Otherwise it is optimized as [Landscape] (long side horizontal)
// and as [Portrait] (long side vertical) with the same margin and item size;
// the candidate with the strictly greater count is preferred and ties go to
// landscape. The first optimization error is returned as is.
func SelectOrientation(width, height, margin, itemWidth, itemHeight float64) (Outcome, error) {
	return SelectOrientationRequest(NewRequest(width, height, margin, itemWidth, itemHeight))
}

// SelectOrientationRequest applies the same policy as [SelectOrientation] to
// a request whose fields may be absent. Missing document dimensions are
// reported before any optimization runs; a missing margin gets
// [DefaultMargin] on both candidates. Signs are dropped before the
// dimensions are compared, matching what [Optimize] does with them.
func SelectOrientationRequest(req Request) (Outcome, error) {
	if req.DocumentWidth == nil {
		return Outcome{}, errors.NewField(errors.ErrCodeMissingField, FieldDocumentWidth, "%s is required", FieldDocumentWidth)
	}
	if req.DocumentHeight == nil {
		return Outcome{}, errors.NewField(errors.ErrCodeMissingField, FieldDocumentHeight, "%s is required", FieldDocumentHeight)
	}

	width, height := math.Abs(*req.DocumentWidth), math.Abs(*req.DocumentHeight)
	if width == height {
		res, err := Optimize(req)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Candidates: []Candidate{{Orientation: Square, Result: res, Preferred: true}},
			Preferred:  Square,
		}, nil
	}

	lowest, highest := min(width, height), max(width, height)

	landscape, err := optimizeAs(req, highest, lowest)
	if err != nil {
		return Outcome{}, err
	}
	portrait, err := optimizeAs(req, lowest, highest)
	if err != nil {
		return Outcome{}, err
	}

	preferred := Landscape
	if portrait.Count() > landscape.Count() {
		preferred = Portrait
	}
	return Outcome{
		Candidates: []Candidate{
			{Orientation: Landscape, Result: landscape, Preferred: preferred == Landscape},
			{Orientation: Portrait, Result: portrait, Preferred: preferred == Portrait},
		},
		Preferred: preferred,
	}, nil
}

// optimizeAs runs Optimize on a copy of req with the document dimensions
// replaced, leaving req untouched.
func optimizeAs(req Request, width, height float64) (Result, error) {
	r := req.Clone()
	r.DocumentWidth = Value(width)
	r.DocumentHeight = Value(height)
	return Optimize(r)
}

// String summarizes the outcome on one line, e.g.
// "landscape 9×3 = 27 (portrait 3×9 = 27)".
func (o Outcome) String() string {
	if len(o.Candidates) == 0 {
		return "no layout"
	}
	best := o.Best()
	s := fmt.Sprintf("%s %s", best.Orientation, summary(best.Result))
	for _, c := range o.Candidates {
		if !c.Preferred {
			s += fmt.Sprintf(" (%s %s)", c.Orientation, summary(c.Result))
		}
	}
	return s
}

func summary(r Result) string {
	return fmt.Sprintf("%d×%d = %d", r.MaxColumns, r.MaxRows, r.Count())
}
