package domain

// Settings are project defaults read from build.yaml. Zero values mean unset.
type Settings struct {
	Channel        string
	Features       []string
	CoverageFormat string
}

// ApplyTo fills the unset fields of flags from the settings. Flags always win.
func (s *Settings) ApplyTo(flags Flags) Flags {
	if s == nil {
		return flags
	}
	if flags.Channel == "" {
		flags.Channel = s.Channel
	}
	if flags.Features == "" && len(s.Features) > 0 {
		flags.Features = JoinFeatures(s.Features)
	}
	return flags
}

// Format returns the requested coverage format, falling back to the settings
// value and then to DefaultCoverageFormat.
func (s *Settings) Format(requested string) string {
	if requested != "" {
		return requested
	}
	if s != nil && s.CoverageFormat != "" {
		return s.CoverageFormat
	}
	return DefaultCoverageFormat.String()
}
