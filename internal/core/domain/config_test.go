package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := domain.NewConfig(domain.Flags{}, domain.HostLinux)
	require.NoError(t, err)

	assert.Equal(t, domain.HostLinux, cfg.Host())
	assert.Equal(t, "nightly", cfg.Channel())
	assert.Empty(t, cfg.Features())
	assert.Empty(t, cfg.RequestedArch())
	assert.Equal(t, domain.TargetNone, cfg.Target())
	assert.Equal(t, domain.FrontendNative, cfg.Frontend())
	assert.False(t, cfg.Release())
	assert.False(t, cfg.NoExamples())
}

func TestNewConfig_ExplicitValues(t *testing.T) {
	cfg, err := domain.NewConfig(domain.Flags{
		Arch:       "arm32",
		Release:    true,
		Features:   "foo bar",
		Channel:    "stable",
		NoExamples: true,
	}, domain.HostLinux)
	require.NoError(t, err)

	assert.Equal(t, "arm32", cfg.RequestedArch())
	assert.Equal(t, domain.TargetARMv7Linux, cfg.Target())
	assert.Equal(t, domain.FrontendEmulated, cfg.Frontend())
	assert.True(t, cfg.Release())
	assert.Equal(t, "foo bar", cfg.Features())
	assert.Equal(t, "stable", cfg.Channel())
	assert.True(t, cfg.NoExamples())
}

func TestNewConfig_UnsupportedArchFails(t *testing.T) {
	cfg, err := domain.NewConfig(domain.Flags{Arch: "aarch64x"}, domain.HostLinux)
	require.ErrorIs(t, err, domain.ErrUnsupportedArchitecture)
	assert.Nil(t, cfg)

	cfg, err = domain.NewConfig(domain.Flags{Arch: "arm32"}, domain.HostWindows)
	require.ErrorIs(t, err, domain.ErrUnsupportedArchitecture)
	assert.Nil(t, cfg)
}

func TestNewConfig_WindowsCrossUsesNativeToolchain(t *testing.T) {
	cfg, err := domain.NewConfig(domain.Flags{Arch: "aarch64"}, domain.HostWindows)
	require.NoError(t, err)

	assert.Equal(t, domain.TargetAArch64Windows, cfg.Target())
	assert.Equal(t, domain.FrontendNative, cfg.Frontend())
}

func TestConfig_FeatureSet(t *testing.T) {
	tests := []struct {
		features string
		want     string
	}{
		{features: "", want: " remote blocking"},
		{features: "foo", want: "foo remote blocking"},
		{features: "foo bar", want: "foo bar remote blocking"},
	}

	for _, tt := range tests {
		t.Run(tt.features, func(t *testing.T) {
			for _, release := range []bool{false, true} {
				for _, arch := range []string{"", "aarch64"} {
					cfg, err := domain.NewConfig(domain.Flags{Features: tt.features, Release: release, Arch: arch}, domain.HostLinux)
					require.NoError(t, err)

					got := cfg.FeatureSet()
					assert.Equal(t, tt.want, got)
					assert.True(t, strings.HasPrefix(got, tt.features))
					assert.Equal(t, 1, strings.Count(got, " remote"))
					assert.Equal(t, 1, strings.Count(got, " blocking"))
				}
			}
		})
	}
}

func TestConfig_CommandOrder(t *testing.T) {
	tests := []struct {
		name  string
		flags domain.Flags
		want  domain.Command
	}{
		{
			name:  "host debug",
			flags: domain.Flags{},
			want:  domain.Command{"cargo", "build", "--features", " remote blocking"},
		},
		{
			name:  "host release",
			flags: domain.Flags{Release: true},
			want:  domain.Command{"cargo", "build", "--release", "--features", " remote blocking"},
		},
		{
			name:  "cross debug",
			flags: domain.Flags{Arch: "aarch64"},
			want: domain.Command{
				"cross", "build", "--target", "aarch64-unknown-linux-gnu",
				"--features", " remote blocking",
			},
		},
		{
			name:  "cross release",
			flags: domain.Flags{Arch: "arm32", Release: true, Features: "foo"},
			want: domain.Command{
				"cross", "build", "--target", "armv7-unknown-linux-gnueabihf",
				"--release", "--features", "foo remote blocking",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := domain.NewConfig(tt.flags, domain.HostLinux)
			require.NoError(t, err)

			first := cfg.Command("build")
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, cfg.Command("build"), "composition must be deterministic")
		})
	}
}

func TestConfig_CommandKeepsBaseOrder(t *testing.T) {
	cfg, err := domain.NewConfig(domain.Flags{Channel: "nightly-2024-01-01"}, domain.HostLinux)
	require.NoError(t, err)

	got := cfg.Command("+"+cfg.Channel(), "miri", "nextest", "run")
	assert.Equal(t, domain.Command{
		"cargo", "+nightly-2024-01-01", "miri", "nextest", "run",
		"--features", " remote blocking",
	}, got)
}
