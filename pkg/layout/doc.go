// Package layout computes step-and-repeat grids: how many whole copies of one
// rectangular item fit, in rows and columns, on a document once a uniform
// margin has been taken off every side.
//
// # Overview
//
// The package has two entry points:
//
//   - [Optimize] packs a single [Request] and returns a [Result] holding the
//     real (pre-margin) document size, the usable size and the row/column
//     counts.
//   - [SelectOrientation] decides between orientations. A square document is
//     optimized once; any other document is optimized twice, once with its
//     long side horizontal ([Landscape]) and once vertical ([Portrait]), and
//     the candidate holding more items is marked preferred. Ties go to
//     landscape.
//
// Both are pure functions: nothing is cached, nothing is shared between
// calls, and caller-owned values are never modified. Callers that edit inputs
// interactively should snapshot all five numbers into one [Request] per
// commit and recompute from scratch.
//
// # Units
//
// All five values share one unit system. The package performs no conversion;
// see pkg/units for that.
//
// # Errors
//
// Failures are returned as *errors.Error values from pkg/errors:
//
//   - MISSING_FIELD when a required field is nil (the field name is attached)
//   - MARGIN_EXCEEDS_DIMENSION when the margin leaves no usable width or
//     height (the axis is attached)
//   - INVALID_ITEM_SIZE when an item dimension is zero
//
// [SelectOrientation] never falls back to the other orientation: the first
// error aborts the whole decision.
//
// # Example
//
//	out, err := layout.SelectOrientation(330, 488, 12.7, 90, 50)
//	if err != nil {
//	    return err
//	}
//	best := out.Best()
//	fmt.Println(best.Orientation, best.Result.MaxColumns, best.Result.MaxRows)
package layout
