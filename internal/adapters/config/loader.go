// Package config provides the loader for the optional build.yaml settings file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// identPattern accepts toolchain channel names and crate feature names.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.+/-]*$`)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	})
	return &Loader{validate: v}
}

// Load reads build.yaml under root. A missing or empty file yields empty settings.
func (l *Loader) Load(root string) (*domain.Settings, error) {
	path := domain.SettingsPath(root)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.Settings{}, nil
		}
		return nil, settingsError(domain.ErrSettingsRead, "cannot read "+domain.SettingsFileName, path, err)
	}

	return l.Parse(path, data)
}

// Parse decodes and validates settings file contents. path is only used for diagnostics.
func (l *Loader) Parse(path string, data []byte) (*domain.Settings, error) {
	var file Buildfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, settingsError(domain.ErrSettingsParse, domain.SettingsFileName+" is not valid YAML", path, err)
	}

	if err := l.validate.Struct(file); err != nil {
		return nil, settingsError(domain.ErrSettingsInvalid, domain.SettingsFileName+" has invalid values", path, err)
	}

	return &domain.Settings{
		Channel:        file.Channel,
		Features:       file.Features,
		CoverageFormat: file.Coverage.Format,
	}, nil
}

func settingsError(sentinel error, msg, path string, reason error) error {
	err := zerr.With(zerr.Wrap(sentinel, msg), "path", path)
	return zerr.With(err, "reason", reason.Error())
}
