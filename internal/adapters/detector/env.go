// Package detector senses the host platform and the output environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how progress output is rendered.
type OutputMode int

const (
	// ModeInteractive renders with the terminal's full colour profile.
	ModeInteractive OutputMode = iota
	// ModeLinear renders plain ANSI output suitable for CI logs.
	ModeLinear
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeInteractive
}
