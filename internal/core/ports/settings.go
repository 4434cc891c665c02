package ports

import "github.com/shinolab/autd3-link-soem/internal/core/domain"

// SettingsLoader defines the interface for loading project defaults.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file under root. A missing file yields empty settings.
	Load(root string) (*domain.Settings, error)
}

// ManifestReader extracts metadata from a crate manifest.
type ManifestReader interface {
	// Version returns the package version declared by the manifest.
	Version(data []byte) (string, error)
}
