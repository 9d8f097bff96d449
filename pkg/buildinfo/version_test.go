package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	tests := []struct {
		version, commit, want string
	}{
		{"v0.3.0", "1a2b3c4d5e6f", "v0.3.0 (1a2b3c4)"},
		{"dev", "none", "dev (none)"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() = %q, want %q", got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", Template())
	}
}
