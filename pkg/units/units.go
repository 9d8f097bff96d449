// Package units converts lengths between the units steprepeat accepts.
//
// The optimizer itself is unit-agnostic: every field of a request must simply
// be expressed in the same unit. This package exists for the edges (CLI flags,
// presets, the preview server) where users mix "210mm" with "8.5in".
//
// Pixels are CSS pixels (96 per inch); points are PostScript points (72 per
// inch).
package units

import (
	"strconv"
	"strings"

	"github.com/matzehuels/steprepeat/pkg/errors"
)

// Unit names a length unit.
type Unit string

const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Inch       Unit = "in"
	Point      Unit = "pt"
	Pixel      Unit = "px"
)

// Default is the unit assumed when none is given.
const Default = Millimeter

// mmPer holds the size of one unit in millimeters.
var mmPer = map[Unit]float64{
	Millimeter: 1,
	Centimeter: 10,
	Inch:       25.4,
	Point:      25.4 / 72,
	Pixel:      25.4 / 96,
}

// aliases maps accepted spellings to their canonical unit.
var aliases = map[string]Unit{
	"mm":          Millimeter,
	"millimeter":  Millimeter,
	"millimeters": Millimeter,
	"cm":          Centimeter,
	"centimeter":  Centimeter,
	"centimeters": Centimeter,
	"in":          Inch,
	"inch":        Inch,
	"inches":      Inch,
	`"`:           Inch,
	"pt":          Point,
	"point":       Point,
	"points":      Point,
	"px":          Pixel,
	"pixel":       Pixel,
	"pixels":      Pixel,
}

// All lists the canonical units in display order.
func All() []Unit {
	return []Unit{Millimeter, Centimeter, Inch, Point, Pixel}
}

// Names lists the canonical unit names, for flag help and completion.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, u := range all {
		names[i] = string(u)
	}
	return names
}

// String implements fmt.Stringer.
func (u Unit) String() string { return string(u) }

// Valid reports whether u is a canonical unit.
func (u Unit) Valid() bool {
	_, ok := mmPer[u]
	return ok
}

// Parse resolves a unit name, case-insensitively. An empty name yields
// [Default].
func Parse(name string) (Unit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	if u, ok := aliases[name]; ok {
		return u, nil
	}
	return "", errors.New(errors.ErrCodeInvalidUnit,
		"unknown unit %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(name string) Unit {
	u, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return u
}

// Convert expresses v, given in from, in to. Both units must be valid.
func Convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	return v * mmPer[from] / mmPer[to]
}

// ToMillimeters converts v from u to millimeters.
func ToMillimeters(v float64, u Unit) float64 { return Convert(v, u, Millimeter) }

// Format renders v with its unit suffix, keeping at most two decimals and
// dropping trailing zeros ("12.7mm", "8.5in", "330mm").
func Format(v float64, u Unit) string {
	return FormatValue(v) + string(u)
}

// FormatValue renders v with at most two decimals and no trailing zeros.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
