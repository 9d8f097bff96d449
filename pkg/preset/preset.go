// Package preset names common document and item sizes so users can type
// "SRA3+" and "business-card-eu" instead of four numbers.
//
// Built-in presets cover ISO, SRA and US paper plus a handful of print items.
// Additional presets come from the [[presets]] tables of the config file and
// are added with [Register].
package preset

import (
	"sort"
	"strings"
	"sync"

	"github.com/maruel/natural"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// Kind says whether a preset describes a sheet or the item placed on it.
type Kind string

const (
	Document Kind = "document"
	Item     Kind = "item"
)

// Preset is a named width × height in a given unit.
type Preset struct {
	Name        string     `toml:"name" json:"name"`
	Kind        Kind       `toml:"kind" json:"kind"`
	Width       float64    `toml:"width" json:"width"`
	Height      float64    `toml:"height" json:"height"`
	Unit        units.Unit `toml:"unit" json:"unit"`
	Description string     `toml:"description,omitempty" json:"description,omitempty"`
}

// In returns p with its dimensions expressed in u.
func (p Preset) In(u units.Unit) Preset {
	from := p.Unit
	if from == "" {
		from = units.Default
	}
	p.Width = units.Convert(p.Width, from, u)
	p.Height = units.Convert(p.Height, from, u)
	p.Unit = u
	return p
}

// Size returns the preset's width and height expressed in u.
func (p Preset) Size(u units.Unit) (width, height float64) {
	c := p.In(u)
	return c.Width, c.Height
}

// Validate checks that p can be registered.
func (p Preset) Validate() error {
	if err := errors.ValidatePresetName(p.Name); err != nil {
		return err
	}
	if p.Kind != Document && p.Kind != Item {
		return errors.New(errors.ErrCodeInvalidConfig,
			"preset %q: kind must be %q or %q, got %q", p.Name, Document, Item, p.Kind)
	}
	if !(p.Width > 0) || !(p.Height > 0) {
		return errors.New(errors.ErrCodeInvalidConfig,
			"preset %q: width and height must be positive", p.Name)
	}
	if _, err := units.Parse(string(p.Unit)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "preset %q", p.Name)
	}
	return nil
}

// Registry holds presets keyed by case-insensitive name. The zero value is
// not usable; call [NewRegistry].
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewRegistry returns a registry seeded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]Preset, len(builtins))}
	for _, p := range builtins {
		r.presets[key(p.Name)] = p
	}
	return r
}

// Get looks up a preset by name.
func (r *Registry) Get(name string) (Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.presets[key(name)]; ok {
		return p, nil
	}
	return Preset{}, errors.New(errors.ErrCodePresetNotFound, "unknown preset %q", name)
}

// Lookup is like Get but also checks the preset's kind.
func (r *Registry) Lookup(name string, kind Kind) (Preset, error) {
	p, err := r.Get(name)
	if err != nil {
		return Preset{}, err
	}
	if p.Kind != kind {
		return Preset{}, errors.New(errors.ErrCodePresetNotFound, "%q is a %s preset, not a %s preset", p.Name, p.Kind, kind)
	}
	return p, nil
}

// Register adds or replaces a preset. Unit defaults to millimeters.
func (r *Registry) Register(p Preset) error {
	if p.Unit == "" {
		p.Unit = units.Default
	}
	u, err := units.Parse(string(p.Unit))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "preset %q", p.Name)
	}
	p.Unit = u
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[key(p.Name)] = p
	return nil
}

// Names returns preset names of the given kind in natural order, so "A3"
// sorts before "A10". An empty kind returns every preset.
func (r *Registry) Names(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.presets))
	for _, p := range r.presets {
		if kind == "" || p.Kind == kind {
			names = append(names, p.Name)
		}
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// List returns presets of the given kind in the same order as Names.
func (r *Registry) List(kind Kind) []Preset {
	names := r.Names(kind)
	out := make([]Preset, 0, len(names))
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range names {
		out = append(out, r.presets[key(n)])
	}
	return out
}

func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry used by [Get], [Names] and
// [Register].
func Default() *Registry {
	defaultOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

// Get looks up a preset in the default registry.
func Get(name string) (Preset, error) { return Default().Get(name) }

// Names lists preset names of kind in the default registry.
func Names(kind Kind) []string { return Default().Names(kind) }

// Register adds a preset to the default registry.
func Register(p Preset) error { return Default().Register(p) }
