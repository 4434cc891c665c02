package detector

import (
	"runtime"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// Host implements ports.HostDetector.
type Host struct {
	goos string
}

// NewHost creates a Host for the running platform.
func NewHost() *Host {
	return &Host{goos: runtime.GOOS}
}

// NewHostFor creates a Host reporting the given GOOS value.
func NewHostFor(goos string) *Host {
	return &Host{goos: goos}
}

// HostOS returns the host operating system.
func (h *Host) HostOS() domain.HostOS {
	return domain.HostFromGOOS(h.goos)
}
