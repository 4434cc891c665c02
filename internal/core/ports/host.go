package ports

import "github.com/shinolab/autd3-link-soem/internal/core/domain"

// HostDetector senses the platform the tool runs on.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostDetector interface {
	// HostOS returns the host operating system.
	HostOS() domain.HostOS
}
