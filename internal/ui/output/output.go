// Package output creates termenv outputs with a consistent colour profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the colour profile for interactive terminals.
// NO_COLOR forces Ascii; otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the colour profile for CI logs.
// NO_COLOR forces Ascii; otherwise basic ANSI colours are used.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a termenv.Output on w using ColorProfile. A nil w means stderr.
func New(w io.Writer) *termenv.Output {
	return NewWithProfile(w, ColorProfile)
}

// NewWithProfile creates a termenv.Output on w using profileFn. A nil w means stderr.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
}
