package sink

import (
	"encoding/json"

	"github.com/matzehuels/steprepeat/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	cells bool
	unit  string
}

// WithJSONCells toggles the per-item cell list. Cells are included by
// default, up to [MaxCells] per candidate.
func WithJSONCells(include bool) JSONOption { return func(r *jsonRenderer) { r.cells = include } }

// WithJSONUnit records the unit every length is expressed in.
func WithJSONUnit(u string) JSONOption { return func(r *jsonRenderer) { r.unit = u } }

type jsonOutput struct {
	Unit       string          `json:"unit,omitempty"`
	Preferred  string          `json:"preferred"`
	Candidates []jsonCandidate `json:"candidates"`
}

type jsonCandidate struct {
	Orientation  string        `json:"orientation"`
	Preferred    bool          `json:"preferred"`
	Count        int           `json:"count"`
	Utilization  float64       `json:"utilization"`
	Result       layout.Result `json:"result"`
	Cells        []layout.Cell `json:"cells,omitempty"`
	CellsOmitted bool          `json:"cellsOmitted,omitempty"` // grid larger than MaxCells
}

// RenderJSON exports an outcome as a pretty-printed JSON document for
// external renderers. Each candidate carries its optimizer result, item
// count, area utilization and, unless disabled or above [MaxCells], every
// placed cell.
//
// RenderJSON returns an error only if JSON marshaling fails.
func RenderJSON(o layout.Outcome, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{cells: true}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Unit:       r.unit,
		Preferred:  o.Preferred.String(),
		Candidates: make([]jsonCandidate, 0, len(o.Candidates)),
	}
	for _, c := range o.Candidates {
		jc := jsonCandidate{
			Orientation: c.Orientation.String(),
			Preferred:   c.Preferred,
			Count:       c.Result.Count(),
			Utilization: c.Result.Utilization(),
			Result:      c.Result,
		}
		if r.cells {
			if c.Result.Count() <= MaxCells {
				jc.Cells = c.Result.Cells()
			} else {
				jc.CellsOmitted = true
			}
		}
		out.Candidates = append(out.Candidates, jc)
	}
	return json.MarshalIndent(out, "", "  ")
}
