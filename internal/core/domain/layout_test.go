package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	root := filepath.Join("work", "autd3-link-soem")
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "ManifestPath",
			got:      domain.ManifestPath(root),
			expected: filepath.Join(root, "Cargo.toml"),
		},
		{
			name:     "UnsafeListPath",
			got:      domain.UnsafeListPath(root),
			expected: filepath.Join(root, "filelist-for-miri-test.txt"),
		},
		{
			name:     "SettingsPath",
			got:      domain.SettingsPath(root),
			expected: filepath.Join(root, "build.yaml"),
		},
		{
			name:     "ExamplesDir",
			got:      domain.ExamplesDir(root),
			expected: filepath.Join(root, "examples"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
