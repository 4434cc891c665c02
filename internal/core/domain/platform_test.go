package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name    string
		host    domain.HostOS
		arch    string
		want    domain.Target
		wantErr bool
	}{
		{name: "linux host build", host: domain.HostLinux, arch: "", want: domain.TargetNone},
		{name: "linux arm32", host: domain.HostLinux, arch: "arm32", want: "armv7-unknown-linux-gnueabihf"},
		{name: "linux aarch64", host: domain.HostLinux, arch: "aarch64", want: "aarch64-unknown-linux-gnu"},
		{name: "linux unknown arch", host: domain.HostLinux, arch: "riscv64", wantErr: true},
		{name: "linux arch is case sensitive", host: domain.HostLinux, arch: "ARM32", wantErr: true},
		{name: "windows host build", host: domain.HostWindows, arch: "", want: domain.TargetNone},
		{name: "windows aarch64", host: domain.HostWindows, arch: "aarch64", want: "aarch64-pc-windows-msvc"},
		{name: "windows arm32 unsupported", host: domain.HostWindows, arch: "arm32", wantErr: true},
		{name: "windows unknown arch", host: domain.HostWindows, arch: "x86", wantErr: true},
		{name: "other host empty", host: domain.HostOther, arch: "", want: domain.TargetNone},
		{name: "other host aarch64", host: domain.HostOther, arch: "aarch64", want: domain.TargetNone},
		{name: "other host unknown arch", host: domain.HostOther, arch: "bogus", want: domain.TargetNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ResolveTarget(tt.host, tt.arch)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUnsupportedArchitecture)
				assert.True(t, domain.IsValidationError(err))
				assert.Equal(t, domain.TargetNone, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTarget_ErrorMetadata(t *testing.T) {
	_, err := domain.ResolveTarget(domain.HostLinux, "mips")
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, "linux", meta["host"])
	assert.Equal(t, "mips", meta["arch"])
	assert.Equal(t, []string{"aarch64", "arm32"}, meta["supported"])
}

func TestSupportedArchs(t *testing.T) {
	assert.Equal(t, []string{"aarch64", "arm32"}, domain.SupportedArchs(domain.HostLinux))
	assert.Equal(t, []string{"aarch64"}, domain.SupportedArchs(domain.HostWindows))
	assert.Empty(t, domain.SupportedArchs(domain.HostOther))
}

func TestSelectFrontend(t *testing.T) {
	hosts := []domain.HostOS{domain.HostLinux, domain.HostWindows, domain.HostOther}
	targets := []domain.Target{
		domain.TargetNone,
		domain.TargetARMv7Linux,
		domain.TargetAArch64Linux,
		domain.TargetAArch64Windows,
	}

	for _, host := range hosts {
		for _, target := range targets {
			t.Run(host.String()+"/"+target.String(), func(t *testing.T) {
				got := domain.SelectFrontend(host, target)
				if host == domain.HostLinux && target.IsCross() {
					assert.Equal(t, domain.FrontendEmulated, got)
					assert.Equal(t, "cross", got.Binary())
				} else {
					assert.Equal(t, domain.FrontendNative, got)
					assert.Equal(t, "cargo", got.Binary())
				}
			})
		}
	}
}

func TestHostFromGOOS(t *testing.T) {
	assert.Equal(t, domain.HostLinux, domain.HostFromGOOS("linux"))
	assert.Equal(t, domain.HostWindows, domain.HostFromGOOS("windows"))
	assert.Equal(t, domain.HostOther, domain.HostFromGOOS("darwin"))
	assert.Equal(t, domain.HostOther, domain.HostFromGOOS("freebsd"))
}

func TestParseArch(t *testing.T) {
	for _, s := range []string{"", "arm32", "aarch64"} {
		arch, ok := domain.ParseArch(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, arch.String())
	}

	_, ok := domain.ParseArch("x86_64")
	assert.False(t, ok)
}
