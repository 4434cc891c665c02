package domain

import (
	"sort"

	"go.trai.ch/zerr"
)

// HostOS is the operating system the build tool runs on.
type HostOS uint8

const (
	// HostOther is any host where cross compilation is not offered.
	HostOther HostOS = iota
	// HostLinux is a Linux host.
	HostLinux
	// HostWindows is a Windows host.
	HostWindows
)

// HostFromGOOS maps a runtime.GOOS value to a HostOS.
func HostFromGOOS(goos string) HostOS {
	switch goos {
	case "linux":
		return HostLinux
	case "windows":
		return HostWindows
	default:
		return HostOther
	}
}

func (h HostOS) String() string {
	switch h {
	case HostLinux:
		return "linux"
	case HostWindows:
		return "windows"
	case HostOther:
		return "other"
	}
	return "unknown"
}

// Arch is a cross-compilation architecture selectable with --arch.
type Arch uint8

const (
	// ArchHost means no architecture was requested.
	ArchHost Arch = iota
	// ArchARM32 is 32-bit ARMv7 with hard float.
	ArchARM32
	// ArchAArch64 is 64-bit ARM.
	ArchAArch64
)

// ParseArch converts a raw --arch value. The empty string is ArchHost.
func ParseArch(s string) (Arch, bool) {
	switch s {
	case "":
		return ArchHost, true
	case "arm32":
		return ArchARM32, true
	case "aarch64":
		return ArchAArch64, true
	default:
		return ArchHost, false
	}
}

func (a Arch) String() string {
	switch a {
	case ArchHost:
		return ""
	case ArchARM32:
		return "arm32"
	case ArchAArch64:
		return "aarch64"
	}
	return "unknown"
}

// Target is a rustc target triple. TargetNone builds for the host.
type Target string

// Known cross-compilation targets.
const (
	TargetNone           Target = ""
	TargetARMv7Linux     Target = "armv7-unknown-linux-gnueabihf"
	TargetAArch64Linux   Target = "aarch64-unknown-linux-gnu"
	TargetAArch64Windows Target = "aarch64-pc-windows-msvc"
)

// IsCross reports whether the target differs from the host.
func (t Target) IsCross() bool {
	return t != TargetNone
}

func (t Target) String() string {
	return string(t)
}

// crossTargets lists, per host, every architecture that may be requested.
// Hosts missing from the table do not cross compile at all.
var crossTargets = map[HostOS]map[Arch]Target{
	HostLinux: {
		ArchHost:    TargetNone,
		ArchARM32:   TargetARMv7Linux,
		ArchAArch64: TargetAArch64Linux,
	},
	HostWindows: {
		ArchHost:    TargetNone,
		ArchAArch64: TargetAArch64Windows,
	},
}

// SupportedArchs returns the non-empty --arch values accepted on host, sorted.
func SupportedArchs(host HostOS) []string {
	archs := make([]string, 0, len(crossTargets[host]))
	for arch := range crossTargets[host] {
		if arch != ArchHost {
			archs = append(archs, arch.String())
		}
	}
	sort.Strings(archs)
	return archs
}

// ResolveTarget maps the requested architecture to a target triple for host.
//
// On Linux and Windows an architecture outside the host's table is an error;
// it never degrades to a host build. Other hosts always build for themselves.
func ResolveTarget(host HostOS, requested string) (Target, error) {
	switch host {
	case HostLinux, HostWindows:
		if arch, ok := ParseArch(requested); ok {
			if target, found := crossTargets[host][arch]; found {
				return target, nil
			}
		}
		return TargetNone, unsupportedArchitecture(host, requested)
	case HostOther:
		return TargetNone, nil
	}
	return TargetNone, unsupportedArchitecture(host, requested)
}

func unsupportedArchitecture(host HostOS, requested string) error {
	err := zerr.Wrap(ErrUnsupportedArchitecture, "cannot cross compile for \""+requested+"\"")
	err = zerr.With(err, "host", host.String())
	err = zerr.With(err, "arch", requested)
	return zerr.With(err, "supported", SupportedArchs(host))
}

// Frontend is the toolchain entry point that receives the composed command.
type Frontend uint8

const (
	// FrontendNative invokes the toolchain directly.
	FrontendNative Frontend = iota
	// FrontendEmulated invokes the containerized cross-build wrapper.
	FrontendEmulated
)

// Toolchain executables.
const (
	ToolchainBinary = "cargo"
	WrapperBinary   = "cross"
	CoverageBinary  = "grcov"
)

// Binary returns the executable name for the frontend.
func (f Frontend) Binary() string {
	switch f {
	case FrontendEmulated:
		return WrapperBinary
	case FrontendNative:
		return ToolchainBinary
	}
	return ToolchainBinary
}

func (f Frontend) String() string {
	switch f {
	case FrontendEmulated:
		return "emulated"
	case FrontendNative:
		return "native"
	}
	return "unknown"
}

// SelectFrontend picks the toolchain frontend for a resolved target.
// Only Linux hosts go through the wrapper for foreign targets; the native
// toolchain on Windows handles its cross targets itself.
func SelectFrontend(host HostOS, target Target) Frontend {
	if !target.IsCross() {
		return FrontendNative
	}
	switch host {
	case HostLinux:
		return FrontendEmulated
	case HostWindows, HostOther:
		return FrontendNative
	}
	return FrontendNative
}
