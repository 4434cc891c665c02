package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinolab/autd3-link-soem/internal/adapters/manifest"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func TestReader_Version(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{
			name: "package version",
			data: "[package]\nname = \"autd3-link-soem\"\nversion = \"29.0.0\"\n",
			want: "29.0.0",
		},
		{
			name: "workspace inherited version",
			data: "[workspace.package]\nversion = \"30.0.1\"\n\n[package]\nname = \"x\"\nversion.workspace = true\n",
			want: "30.0.1",
		},
		{
			name: "workspace only",
			data: "[workspace]\nmembers = [\"a\"]\n\n[workspace.package]\nversion = \"1.2.3\"\n",
			want: "1.2.3",
		},
		{
			name:    "no version",
			data:    "[package]\nname = \"x\"\n",
			wantErr: true,
		},
		{
			name:    "invalid toml",
			data:    "[package\nversion = ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifest.NewReader().Version([]byte(tt.data))
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrManifestParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
