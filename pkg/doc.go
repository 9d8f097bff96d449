// Package pkg provides the core libraries for steprepeat sheet layouts.
//
// # Overview
//
// Steprepeat answers a print-shop question: how many copies of an item fit on
// a sheet? Given a document size, a uniform margin and an item size, it finds
// the grid that holds the most whole items, trying the sheet in landscape and
// in portrait, and renders a preview of the winner.
//
// # Architecture
//
// The typical data flow:
//
//	Flags / query string / editor fields
//	         ↓
//	    [input], [units], [preset] (text → numbers in one unit)
//	         ↓
//	    [layout] (optimizer + orientation selector)
//	         ↓
//	    [render/sink] (SVG, PNG, JSON, text)
//
// [pipeline] ties the stages together for the CLI, the editor and the preview
// server, with [cache] for rendered artifacts and [observability] hooks
// around each stage.
//
// # Quick Start
//
//	outcome, err := layout.SelectOrientation(330, 488, 12.7, 90, 50)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(outcome) // landscape 5×6 = 30 (portrait 3×9 = 27)
//	svg := sink.RenderSVG(outcome.Best().Result, sink.WithUnit("mm"))
//
// # Main Packages
//
// ## Core
//
// [layout] - The optimizer and orientation selector. Pure functions over
// float64 lengths in a single, caller-chosen unit. Failures are typed
// [errors] codes naming the offending field or axis.
//
// ## Input
//
// [input] - Arithmetic expressions with optional unit suffixes ("(330-10)/2",
// "8.5in").
//
// [units] - Millimeters, centimeters, inches, points and CSS pixels.
//
// [preset] - Named paper and item sizes ("SRA3+", "business-card-eu"),
// extended from the config file.
//
// ## Output
//
// [render/sink] - SVG, PNG, JSON and ASCII renderers for a layout result.
//
// [render/styles] - Flat and seeded-palette color schemes.
//
// ## Infrastructure
//
// [pipeline] - Layout → render orchestration shared by every entry point.
//
// [cache] - Null, file and in-memory artifact caches.
//
// [config] - TOML configuration with environment overrides.
//
// [observability] - Hook interfaces for logging and metrics.
//
// [errors] - Structured error codes.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./...              # All tests
//	go test ./pkg/layout/...   # The optimizer only
//	go test -run Example ./... # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/layout
// [input]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/input
// [units]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/units
// [preset]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/preset
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/steprepeat/pkg/buildinfo
package pkg
