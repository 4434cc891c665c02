package config

// Buildfile represents the structure of the build.yaml settings file.
type Buildfile struct {
	Channel  string      `yaml:"channel" validate:"omitempty,ident"`
	Features []string    `yaml:"features" validate:"dive,ident"`
	Coverage CoverageDTO `yaml:"coverage"`
}

// CoverageDTO represents the coverage section of the settings file.
type CoverageDTO struct {
	Format string `yaml:"format" validate:"omitempty,oneof=lcov html markdown"`
}
