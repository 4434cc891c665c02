package domain

import "path/filepath"

const (
	// ManifestFileName is the crate manifest rewritten by version bumps.
	ManifestFileName = "Cargo.toml"

	// UnsafeListFileName receives the unsafe audit result.
	UnsafeListFileName = "filelist-for-miri-test.txt"

	// SettingsFileName is the optional project settings file.
	SettingsFileName = "build.yaml"

	// ExamplesDirName is the examples workspace run from by `run`.
	ExamplesDirName = "examples"

	// SourceGlob matches every Rust source file.
	SourceGlob = "**/*.rs"

	// ProfileGlob matches raw profiles left behind by instrumented runs.
	ProfileGlob = "**/*.profraw"

	// FilePerm is the default permission for written files (rw-r--r--).
	FilePerm = 0o644
)

// ManifestPath returns the manifest path under root.
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestFileName)
}

// UnsafeListPath returns the unsafe audit output path under root.
func UnsafeListPath(root string) string {
	return filepath.Join(root, UnsafeListFileName)
}

// SettingsPath returns the settings file path under root.
func SettingsPath(root string) string {
	return filepath.Join(root, SettingsFileName)
}

// ExamplesDir returns the examples workspace under root.
func ExamplesDir(root string) string {
	return filepath.Join(root, ExamplesDirName)
}
