package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateNumber rejects values that cannot take part in layout arithmetic.
// NaN and infinities slip through strconv and expression evaluation alike,
// so every collaborator funnels its parsed numbers through here.
func ValidateNumber(name string, v float64) error {
	if math.IsNaN(v) {
		return NewField(ErrCodeInvalidInput, name, "%s is not a number", name)
	}
	if math.IsInf(v, 0) {
		return NewField(ErrCodeInvalidInput, name, "%s must be finite", name)
	}
	return nil
}

// presetNameRegex matches preset names such as "A4", "sra3+" or "business-card-eu".
var presetNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)

// ValidatePresetName validates a user-defined preset name.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 64 characters
//   - No whitespace or control characters
//   - Letters, digits, '.', '_', '+' and '-' only, starting with a letter or digit
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "preset name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidConfig, "preset name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidConfig, "preset name %q contains whitespace or control characters", name)
		}
	}

	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid preset name: %q", name)
	}

	return nil
}

// ValidateAddr performs a light sanity check on a listen address.
// It only rejects values net.Listen would certainly refuse.
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidConfig, "listen address cannot be empty")
	}
	if !strings.Contains(addr, ":") {
		return New(ErrCodeInvalidConfig, "listen address %q must include a port (e.g. \":8080\")", addr)
	}
	return nil
}
