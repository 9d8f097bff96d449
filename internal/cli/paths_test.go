package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"default", "", filepath.Join(home, ".cache", appName)},
		{"xdg", "/tmp/custom-cache", filepath.Join("/tmp/custom-cache", appName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)
			got, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
