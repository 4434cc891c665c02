// Package manifest reads crate metadata from Cargo.toml.
package manifest

import (
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// cargoManifest is the subset of Cargo.toml the tool inspects.
type cargoManifest struct {
	Package struct {
		Version any `toml:"version"`
	} `toml:"package"`
	Workspace struct {
		Package struct {
			Version string `toml:"version"`
		} `toml:"package"`
	} `toml:"workspace"`
}

// Reader implements ports.ManifestReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Version returns [package].version, falling back to [workspace.package].version
// when the package inherits it with `version.workspace = true`.
func (r *Reader) Version(data []byte) (string, error) {
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrManifestParse, "Cargo.toml is not valid TOML"), "reason", err.Error())
	}

	if v, ok := m.Package.Version.(string); ok && v != "" {
		return v, nil
	}
	if v := m.Workspace.Package.Version; v != "" {
		return v, nil
	}
	return "", zerr.Wrap(domain.ErrManifestParse, "Cargo.toml declares no version")
}
