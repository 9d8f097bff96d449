package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidUnit, "unknown unit %q", "furlong")

	if err.Code != ErrCodeInvalidUnit {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidUnit)
	}

	if err.Message != `unknown unit "furlong"` {
		t.Errorf("Message = %v, want %v", err.Message, `unknown unit "furlong"`)
	}

	expected := `INVALID_UNIT: unknown unit "furlong"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestNewField(t *testing.T) {
	err := NewField(ErrCodeMarginExceedsDimension, "height", "margin leaves no usable height")

	if err.Field != "height" {
		t.Errorf("Field = %q, want %q", err.Field, "height")
	}
	if Field(err) != "height" {
		t.Errorf("Field(err) = %q, want %q", Field(err), "height")
	}

	wrapped := fmt.Errorf("select orientation: %w", err)
	if Field(wrapped) != "height" {
		t.Errorf("Field(wrapped) = %q, want %q", Field(wrapped), "height")
	}
	if Field(errors.New("plain")) != "" {
		t.Error("Field(plain) should be empty")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected token")
	err := Wrap(ErrCodeInvalidExpression, cause, "cannot evaluate %q", "12*")

	if err.Code != ErrCodeInvalidExpression {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidExpression)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeMissingField, "test"),
			code:     ErrCodeMissingField,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMissingField, "test"),
			code:     ErrCodeInvalidItemSize,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("layout: %w", New(ErrCodeInvalidItemSize, "inner")),
			code:     ErrCodeInvalidItemSize,
			expected: true,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodePresetNotFound, "test"),
			expected: ErrCodePresetNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsLayout(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeMissingField, "x"), true},
		{New(ErrCodeMarginExceedsDimension, "x"), true},
		{New(ErrCodeInvalidItemSize, "x"), true},
		{New(ErrCodeInvalidUnit, "x"), false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(string(GetCode(tt.err)), func(t *testing.T) {
			if got := IsLayout(tt.err); got != tt.want {
				t.Errorf("IsLayout(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
