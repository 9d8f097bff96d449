package input

import (
	"math"
	"testing"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/units"
)

func TestEval(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"330", 330, false},
		{"12.7", 12.7, false},
		{"12.7*2", 25.4, false},
		{"(210-10)/2", 100, false},
		{"-5", -5, false},
		{"  90  ", 90, false},
		{"7/2", 3.5, false},
		{"", 0, true},
		{"abc", 0, true},
		{`"330"`, 0, true},
		{"1/0", 0, true},
		{"3 +", 0, true},
		{"true", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Eval(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Eval(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidExpression) {
					t.Errorf("Eval(%q) code = %s, want %s", tt.in, errors.GetCode(err), errors.ErrCodeInvalidExpression)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Eval(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	got, err := Field("   ")
	if err != nil || got != nil {
		t.Errorf("Field(blank) = %v, %v, want nil, nil", got, err)
	}

	got, err = Field("0")
	if err != nil {
		t.Fatalf("Field(0) error = %v", err)
	}
	if got == nil || *got != 0 {
		t.Errorf("Field(0) = %v, want pointer to 0", got)
	}

	if _, err := Field("x"); !errors.Is(err, errors.ErrCodeInvalidExpression) {
		t.Errorf("Field(x) error = %v, want INVALID_EXPRESSION", err)
	}
}

func TestDimension(t *testing.T) {
	tests := []struct {
		in       string
		wantV    float64
		wantUnit units.Unit
		wantCode errors.Code
	}{
		{"210mm", 210, units.Millimeter, ""},
		{"8.5in", 8.5, units.Inch, ""},
		{"72 pt", 72, units.Point, ""},
		{`11"`, 11, units.Inch, ""},
		{"(210-10)/2 cm", 100, units.Centimeter, ""},
		{"330", 330, units.Millimeter, ""},
		{"5 parsecs", 0, "", errors.ErrCodeInvalidUnit},
		{"mm", 0, "", errors.ErrCodeInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, u, err := Dimension(tt.in, units.Millimeter)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("Dimension(%q) error = %v, want %s", tt.in, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Dimension(%q) error = %v", tt.in, err)
			}
			if math.Abs(v-tt.wantV) > 1e-9 || u != tt.wantUnit {
				t.Errorf("Dimension(%q) = %v %s, want %v %s", tt.in, v, u, tt.wantV, tt.wantUnit)
			}
		})
	}
}

func TestLength(t *testing.T) {
	got, err := Length("3.5in", units.Millimeter)
	if err != nil {
		t.Fatalf("Length() error = %v", err)
	}
	if got == nil || math.Abs(*got-88.9) > 1e-9 {
		t.Errorf("Length(3.5in, mm) = %v, want 88.9", got)
	}

	got, err = Length("90", units.Inch)
	if err != nil {
		t.Fatalf("Length() error = %v", err)
	}
	if got == nil || *got != 90 {
		t.Errorf("Length(90, in) = %v, want 90", got)
	}

	got, err = Length("", units.Millimeter)
	if err != nil || got != nil {
		t.Errorf("Length(blank) = %v, %v, want nil, nil", got, err)
	}
}
