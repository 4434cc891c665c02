package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Example is one of the runnable examples shipped in the examples workspace.
type Example uint8

const (
	// ExampleSOEM drives devices over a local EtherCAT interface.
	ExampleSOEM Example = iota + 1
	// ExampleRemoteSOEM drives devices through a remote SOEM server.
	ExampleRemoteSOEM
)

// Examples returns the allow-list of examples in display order.
func Examples() []Example {
	return []Example{ExampleSOEM, ExampleRemoteSOEM}
}

// ExampleNames returns the allow-list as example names.
func ExampleNames() []string {
	examples := Examples()
	names := make([]string, len(examples))
	for i, e := range examples {
		names[i] = e.String()
	}
	return names
}

// ParseExample validates name against the allow-list.
func ParseExample(name string) (Example, error) {
	for _, e := range Examples() {
		if e.String() == name {
			return e, nil
		}
	}
	err := zerr.Wrap(ErrUnknownExample, "example \""+name+"\" is not found")
	err = zerr.With(err, "example", name)
	return 0, zerr.With(err, "available", ExampleNames())
}

func (e Example) String() string {
	switch e {
	case ExampleSOEM:
		return "soem"
	case ExampleRemoteSOEM:
		return "remote_soem"
	}
	return "unknown"
}

// BaselineFeature returns the crate feature the example cannot run without.
func (e Example) BaselineFeature() string {
	switch e {
	case ExampleSOEM:
		return "local"
	case ExampleRemoteSOEM:
		return "remote"
	}
	return ""
}

// Features returns the example's baseline feature followed by extra, space separated.
func (e Example) Features(extra string) string {
	features := e.BaselineFeature()
	if extra != "" {
		features += " " + extra
	}
	return features
}

// RunCommand composes the invocation that runs the example from the examples workspace.
// Examples always use the native toolchain and disable default features.
func (e Example) RunCommand(release bool, extraFeatures string) Command {
	cmd := Command{ToolchainBinary, "run"}
	if release {
		cmd = append(cmd, "--release")
	}
	return cmd.With("--example", e.String(), "--no-default-features", "--features", e.Features(extraFeatures))
}

// JoinFeatures joins a feature list the way the toolchain expects it on the command line.
func JoinFeatures(features []string) string {
	return strings.Join(features, " ")
}
