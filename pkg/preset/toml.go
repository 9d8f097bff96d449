package preset

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/steprepeat/pkg/units"
)

// tomlFile is the on-disk shape: a list of [[presets]] tables.
type tomlFile struct {
	Presets []Preset `toml:"presets"`
}

// LoadFromTOML parses [[presets]] tables. Presets are validated but not
// registered.
func LoadFromTOML(data []byte) ([]Preset, error) {
	var raw tomlFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("preset: parse TOML: %w", err)
	}
	for i := range raw.Presets {
		p := &raw.Presets[i]
		u, err := units.Parse(string(p.Unit))
		if err != nil {
			return nil, fmt.Errorf("preset %d: %w", i+1, err)
		}
		p.Unit = u
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %d: %w", i+1, err)
		}
	}
	return raw.Presets, nil
}

// SaveToTOML serializes presets as [[presets]] tables.
func SaveToTOML(presets []Preset) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlFile{Presets: presets}); err != nil {
		return nil, fmt.Errorf("preset: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}
