// Package input turns what a user types into request values.
//
// Every numeric field accepts a small arithmetic expression, so "330",
// "12.7*2", "(210-10)/2" and "-5" are all valid. Lengths may carry a unit
// suffix ("210mm", "8.5in", "72 pt"). Empty input means the field was left
// blank, which the optimizer distinguishes from zero.
package input

import (
	"math"
	"strings"
	"unicode"

	"github.com/expr-lang/expr"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// env is deliberately empty: identifiers are rejected at compile time.
var env = map[string]any{}

// Eval evaluates a numeric expression.
func Eval(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidExpression, "empty expression")
	}

	program, err := expr.Compile(s, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidExpression, err, "invalid expression %q", s)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidExpression, err, "cannot evaluate %q", s)
	}

	v, ok := out.(float64)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidExpression, "%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidExpression, "%q does not evaluate to a finite number", s)
	}
	return v, nil
}

// Field evaluates an optional field. Blank input yields nil.
func Field(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := Eval(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Dimension splits a length into its value and unit. The unit suffix is
// optional; without one, def is returned.
func Dimension(s string, def units.Unit) (float64, units.Unit, error) {
	expression, suffix := splitUnit(s)
	u := def
	if suffix != "" {
		var err error
		if u, err = units.Parse(suffix); err != nil {
			return 0, "", err
		}
	}
	v, err := Eval(expression)
	if err != nil {
		return 0, "", err
	}
	return v, u, nil
}

// Length parses an optional length and expresses it in target. A bare
// number is taken to already be in target. Blank input yields nil.
func Length(s string, target units.Unit) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, u, err := Dimension(s, target)
	if err != nil {
		return nil, err
	}
	v = units.Convert(v, u, target)
	return &v, nil
}

// splitUnit separates a trailing run of letters (or an inch mark) from the
// expression before it.
func splitUnit(s string) (expression, suffix string) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 {
		c := rune(s[i-1])
		if !unicode.IsLetter(c) && c != '"' {
			break
		}
		i--
	}
	return strings.TrimSpace(s[:i]), s[i:]
}
