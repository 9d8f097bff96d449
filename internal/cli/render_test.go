package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/pipeline"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"sheet.svg", "svg"},
		{"out/sheet.PNG", "png"},
		{"sheet.json", "json"},
		{"sheet.txt", "txt"},
		{"sheet.pdf", ""},
		{"sheet", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := formatOf(tt.path); got != tt.want {
				t.Errorf("formatOf(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", defaultOutputBase},
		{"sheet", "sheet"},
		{"sheet.svg", "sheet"},
		{"out/sheet.png", "out/sheet"},
		{"sheet.v2", "sheet.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			if got := basePath(tt.output); got != tt.want {
				t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		artifacts []string
		want      map[string]string
	}{
		{
			name:      "single artifact keeps exact path",
			output:    "out/cards.svg",
			artifacts: []string{"svg"},
			want:      map[string]string{"svg": "out/cards.svg"},
		},
		{
			name:      "single artifact without extension",
			output:    "cards",
			artifacts: []string{"png"},
			want:      map[string]string{"png": "cards.png"},
		},
		{
			name:      "default base",
			output:    "",
			artifacts: []string{"svg", "json"},
			want:      map[string]string{"svg": "steprepeat.svg", "json": "steprepeat.json"},
		},
		{
			name:      "extension stripped for several artifacts",
			output:    "cards.svg",
			artifacts: []string{"svg", "portrait.svg"},
			want:      map[string]string{"svg": "cards.svg", "portrait.svg": "cards.portrait.svg"},
		},
		{
			name:      "mismatched extension becomes base",
			output:    "cards.png",
			artifacts: []string{"txt"},
			want:      map[string]string{"txt": "cards.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifacts := make(map[string][]byte, len(tt.artifacts))
			for _, a := range tt.artifacts {
				artifacts[a] = []byte(a)
			}
			got := outputPaths(tt.output, artifacts)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for name, want := range tt.want {
				if got[name] != want {
					t.Errorf("path[%q] = %q, want %q", name, got[name], want)
				}
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "sheet.txt")

	if err := writeFile(path, []byte("+--+")); err != nil {
		t.Fatalf("writeFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "+--+" {
		t.Errorf("content = %q, want %q", data, "+--+")
	}
}

// renderFlagsCommand registers the flags apply inspects with Changed.
func renderFlagsCommand(f *renderFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "render"}
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "")
	cmd.Flags().Int64Var(&f.seed, "seed", pipeline.DefaultSeed, "")
	return cmd
}

func TestRenderFlagsApply(t *testing.T) {
	tests := []struct {
		name      string
		flags     renderFlags
		args      []string
		check     func(t *testing.T, o pipeline.Options)
		wantError errors.Code
	}{
		{
			name:  "formats parsed",
			flags: renderFlags{formats: "SVG, txt"},
			check: func(t *testing.T, o pipeline.Options) {
				if strings.Join(o.Formats, ",") != "svg,txt" {
					t.Errorf("Formats = %v, want [svg txt]", o.Formats)
				}
			},
		},
		{
			name:  "format inferred from output",
			flags: renderFlags{output: "out/cards.png"},
			check: func(t *testing.T, o pipeline.Options) {
				if strings.Join(o.Formats, ",") != "png" {
					t.Errorf("Formats = %v, want [png]", o.Formats)
				}
			},
		},
		{
			name:  "explicit format beats output extension",
			flags: renderFlags{output: "cards.png", formats: "json"},
			check: func(t *testing.T, o pipeline.Options) {
				if strings.Join(o.Formats, ",") != "json" {
					t.Errorf("Formats = %v, want [json]", o.Formats)
				}
			},
		},
		{
			name: "unchanged scale and seed keep config values",
			check: func(t *testing.T, o pipeline.Options) {
				if o.Scale != 2 || o.Seed != 9 {
					t.Errorf("Scale, Seed = %g, %d; want 2, 9", o.Scale, o.Seed)
				}
			},
		},
		{
			name: "changed scale and seed override",
			args: []string{"--scale", "8", "--seed", "3"},
			check: func(t *testing.T, o pipeline.Options) {
				if o.Scale != 8 || o.Seed != 3 {
					t.Errorf("Scale, Seed = %g, %d; want 8, 3", o.Scale, o.Seed)
				}
			},
		},
		{
			name:  "toggles",
			flags: renderFlags{all: true, noLabels: true, noMargin: true},
			check: func(t *testing.T, o pipeline.Options) {
				if !o.All || o.ShowLabels || o.ShowMargin {
					t.Errorf("All, ShowLabels, ShowMargin = %v, %v, %v", o.All, o.ShowLabels, o.ShowMargin)
				}
			},
		},
		{
			name:      "invalid format",
			flags:     renderFlags{formats: "svg,gif"},
			wantError: errors.ErrCodeInvalidFormat,
		},
		{
			name:      "scale out of range",
			args:      []string{"--scale", "500"},
			wantError: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.flags
			cmd := renderFlagsCommand(&f)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error: %v", err)
			}

			opts := pipeline.DefaultOptions()
			opts.Scale = 2
			opts.Seed = 9
			err := f.apply(cmd, &opts)
			if tt.wantError != "" {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("apply() error = %v, want code %s", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("apply() error: %v", err)
			}
			tt.check(t, opts)
		})
	}
}
