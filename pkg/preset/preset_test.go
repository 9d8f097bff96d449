package preset

import (
	"math"
	"sort"
	"testing"

	"github.com/maruel/natural"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/units"
)

func TestBuiltinsValid(t *testing.T) {
	for _, p := range builtins {
		if err := p.Validate(); err != nil {
			t.Errorf("builtin %q invalid: %v", p.Name, err)
		}
	}
}

func TestGet(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name     string
		wantKind Kind
		wantW    float64
		wantH    float64
		wantErr  bool
	}{
		{"SRA3+", Document, 330, 488, false},
		{"sra3+", Document, 330, 488, false},
		{"A4", Document, 210, 297, false},
		{"business-card-90x50", Item, 90, 50, false},
		{"B5", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Get(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodePresetNotFound) {
					t.Errorf("Get(%q) code = %s, want %s", tt.name, errors.GetCode(err), errors.ErrCodePresetNotFound)
				}
				return
			}
			if p.Kind != tt.wantKind || p.Width != tt.wantW || p.Height != tt.wantH {
				t.Errorf("Get(%q) = %+v, want %s %v×%v", tt.name, p, tt.wantKind, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLookupKind(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("A4", Item); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Lookup(A4, item) error = %v, want PRESET_NOT_FOUND", err)
	}
	if _, err := r.Lookup("A4", Document); err != nil {
		t.Errorf("Lookup(A4, document) error = %v", err)
	}
}

func TestIn(t *testing.T) {
	p, err := NewRegistry().Get("business-card-us")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	mm := p.In(units.Millimeter)
	if math.Abs(mm.Width-88.9) > 1e-9 || math.Abs(mm.Height-50.8) > 1e-9 {
		t.Errorf("In(mm) = %v×%v, want 88.9×50.8", mm.Width, mm.Height)
	}
	if mm.Unit != units.Millimeter {
		t.Errorf("In(mm).Unit = %s", mm.Unit)
	}
	if p.Unit != units.Inch {
		t.Error("In() modified the receiver")
	}
}

func TestNames(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Preset{Name: "A10", Kind: Document, Width: 26, Height: 37}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	docs := r.Names(Document)
	if !sort.IsSorted(natural.StringSlice(docs)) {
		t.Errorf("Names(document) not in natural order: %v", docs)
	}
	if indexOf(docs, "A3") > indexOf(docs, "A10") {
		t.Errorf("A3 should sort before A10: %v", docs)
	}
	for _, n := range docs {
		if p, _ := r.Get(n); p.Kind != Document {
			t.Errorf("Names(document) includes %s preset %q", p.Kind, n)
		}
	}

	items := r.Names(Item)
	all := r.Names("")
	if len(all) != len(docs)+len(items) {
		t.Errorf("len(Names(\"\")) = %d, want %d", len(all), len(docs)+len(items))
	}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		p       Preset
		wantErr bool
	}{
		{"valid", Preset{Name: "flyer-dl", Kind: Item, Width: 99, Height: 210}, false},
		{"unit alias", Preset{Name: "card", Kind: Item, Width: 3, Height: 2, Unit: "inches"}, false},
		{"bad kind", Preset{Name: "x", Kind: "poster", Width: 1, Height: 1}, true},
		{"zero width", Preset{Name: "x", Kind: Item, Width: 0, Height: 1}, true},
		{"bad name", Preset{Name: "has space", Kind: Item, Width: 1, Height: 1}, true},
		{"bad unit", Preset{Name: "x", Kind: Item, Width: 1, Height: 1, Unit: "yd"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("Register() code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
				}
				return
			}
			got, err := r.Get(tt.p.Name)
			if err != nil {
				t.Fatalf("Get() after Register() error = %v", err)
			}
			if !got.Unit.Valid() {
				t.Errorf("registered unit %q is not canonical", got.Unit)
			}
		})
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	if err := a.Register(Preset{Name: "only-in-a", Kind: Item, Width: 1, Height: 1}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := b.Get("only-in-a"); err == nil {
		t.Error("preset leaked between registries")
	}
}
