package domain

import "strings"

// DefaultChannel is the toolchain channel used when none is requested.
const DefaultChannel = "nightly"

// BaselineFeatures are enabled on every toolchain invocation, after the user's features.
var BaselineFeatures = []string{"remote", "blocking"}

// Flags is the raw, already-parsed flag record a Config is built from.
type Flags struct {
	Arch       string
	Release    bool
	Features   string
	Channel    string
	NoExamples bool
}

// Config is the resolved configuration of one invocation. It is immutable.
type Config struct {
	host          HostOS
	requestedArch string
	target        Target
	frontend      Frontend
	release       bool
	features      string
	channel       string
	noExamples    bool
}

// NewConfig resolves flags against the host platform.
func NewConfig(flags Flags, host HostOS) (*Config, error) {
	cfg := &Config{
		host:          host,
		requestedArch: flags.Arch,
		target:        TargetNone,
		frontend:      FrontendNative,
		release:       flags.Release,
		features:      flags.Features,
		channel:       flags.Channel,
		noExamples:    flags.NoExamples,
	}
	if cfg.channel == "" {
		cfg.channel = DefaultChannel
	}

	if flags.Arch != "" {
		target, err := ResolveTarget(host, flags.Arch)
		if err != nil {
			return nil, err
		}
		cfg.target = target
		cfg.frontend = SelectFrontend(host, target)
	}

	return cfg, nil
}

// Host returns the host the config was resolved for.
func (c *Config) Host() HostOS { return c.host }

// RequestedArch returns the raw --arch value.
func (c *Config) RequestedArch() string { return c.requestedArch }

// Target returns the cross-compilation target, or TargetNone.
func (c *Config) Target() Target { return c.target }

// Frontend returns the selected toolchain frontend.
func (c *Config) Frontend() Frontend { return c.frontend }

// Release reports whether release mode was requested.
func (c *Config) Release() bool { return c.release }

// Features returns the user's space-separated feature list.
func (c *Config) Features() string { return c.features }

// Channel returns the toolchain channel.
func (c *Config) Channel() string { return c.channel }

// NoExamples reports whether examples are skipped.
func (c *Config) NoExamples() bool { return c.noExamples }

// FeatureSet returns the value of the --features flag: the user's features
// followed by the baseline features.
func (c *Config) FeatureSet() string {
	return c.features + " " + strings.Join(BaselineFeatures, " ")
}

// Command composes a toolchain invocation. The token order is fixed:
// frontend, base subcommands, --target, --release, --features.
// Callers append task-specific flags after the returned command.
func (c *Config) Command(base ...string) Command {
	cmd := make(Command, 0, len(base)+6)
	cmd = append(cmd, c.frontend.Binary())
	cmd = append(cmd, base...)
	if c.target.IsCross() {
		cmd = append(cmd, "--target", c.target.String())
	}
	if c.release {
		cmd = append(cmd, "--release")
	}
	return append(cmd, "--features", c.FeatureSet())
}
