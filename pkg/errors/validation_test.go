package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 12.7, false},
		{"negative", -3, false},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNumber("margin", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNumber(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && Field(err) != "margin" {
				t.Errorf("Field(err) = %q, want %q", Field(err), "margin")
			}
		})
	}
}

func TestValidatePresetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid paper", "A4", false},
		{"valid plus", "SRA3+", false},
		{"valid dashed", "business-card-eu", false},
		{"valid dotted", "label.l7163", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"space", "my card", true},
		{"leading dash", "-card", true},
		{"slash", "a/b", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePresetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAddr(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{":8080", false},
		{"127.0.0.1:9000", false},
		{"", true},
		{"localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateAddr(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAddr(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
