package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrUnsupportedArchitecture is returned when the requested architecture has no
	// cross-compilation target on the current host.
	ErrUnsupportedArchitecture = zerr.New("architecture is not supported")

	// ErrUnknownExample is returned when `run` is asked for an example outside the allow-list.
	ErrUnknownExample = zerr.New("example is not found")

	// ErrInvalidFormat is returned when the coverage report format is not recognized.
	ErrInvalidFormat = zerr.New("invalid coverage format, expected 'lcov', 'html' or 'markdown'")

	// ErrInvalidVersion is returned when a version bump is requested with a non-semver string.
	ErrInvalidVersion = zerr.New("invalid version, expected MAJOR.MINOR.PATCH")

	// ErrUnknownIntent is returned when no handler is registered for an intent.
	ErrUnknownIntent = zerr.New("unknown command")

	// ErrCommandFailed is returned when an external invocation exits with a nonzero status
	// or cannot be started.
	ErrCommandFailed = zerr.New("external command failed")

	// ErrCleanupFailed is returned when temporary profiling artifacts cannot be removed.
	ErrCleanupFailed = zerr.New("failed to remove profiling artifacts")

	// ErrManifestRead is returned when the manifest file cannot be read.
	ErrManifestRead = zerr.New("failed to read manifest")

	// ErrManifestWrite is returned when the manifest file cannot be written.
	ErrManifestWrite = zerr.New("failed to write manifest")

	// ErrManifestParse is returned when the manifest cannot be decoded.
	ErrManifestParse = zerr.New("failed to parse manifest")

	// ErrSourceScanFailed is returned when enumerating or reading source files fails.
	ErrSourceScanFailed = zerr.New("failed to scan source files")

	// ErrAuditWrite is returned when the unsafe file list cannot be written.
	ErrAuditWrite = zerr.New("failed to write unsafe file list")

	// ErrSettingsRead is returned when the settings file exists but cannot be read.
	ErrSettingsRead = zerr.New("failed to read settings file")

	// ErrSettingsParse is returned when the settings file cannot be parsed.
	ErrSettingsParse = zerr.New("failed to parse settings file")

	// ErrSettingsInvalid is returned when the settings file fails validation.
	ErrSettingsInvalid = zerr.New("invalid settings file")

	// ErrRootNotFound is returned when the project root cannot be resolved.
	ErrRootNotFound = zerr.New("failed to resolve project root")
)

// IsValidationError reports whether err was caused by invalid user input that
// was rejected before any external invocation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedArchitecture) ||
		errors.Is(err, ErrUnknownExample) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidVersion)
}

// Exit codes returned by the build CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure, typically an external tool exiting nonzero.
	ExitFailure = 1

	// ExitValidation indicates the request was rejected before anything was invoked.
	ExitValidation = -1
)
