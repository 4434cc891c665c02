package domain

// Documentation and sanitizer settings.
const (
	DocChannel   = "nightly"
	DocFlagsVar  = "RUSTDOCFLAGS"
	DocFlags     = "--cfg docsrs -D warnings"
	MiriFlagsVar = "MIRIFLAGS"
	MiriFlags    = "-Zmiri-disable-isolation"
)

// lintArgs are passed through to clippy after "--".
var lintArgs = []string{"--", "-D", "warnings", "-W", "clippy::all"}

// BuildCommand composes the build invocation.
func BuildCommand(cfg *Config) Command {
	cmd := cfg.Command("build")
	if !cfg.NoExamples() {
		cmd = cmd.With("--examples")
	}
	return cmd
}

// LintCommand composes the clippy invocation. Warnings are denied.
func LintCommand(cfg *Config) Command {
	cmd := cfg.Command("clippy", "--tests")
	if !cfg.NoExamples() {
		cmd = cmd.With("--examples")
	}
	return cmd.With(lintArgs...)
}

// DocCommand composes the documentation invocation. It ignores the resolved
// configuration and always uses DocChannel.
func DocCommand() Command {
	return Command{ToolchainBinary, "+" + DocChannel, "doc", "--no-deps"}
}

// DocEnvironment returns env with strict rustdoc flags set.
func DocEnvironment(env Environment) Environment {
	return env.With(DocFlagsVar, DocFlags)
}

// TestCommand composes the test invocation, under miri when miri is set.
func TestCommand(cfg *Config, miri bool) Command {
	if miri {
		return cfg.Command("+"+cfg.Channel(), "miri", "nextest", "run")
	}
	return cfg.Command("nextest", "run")
}

// MiriEnvironment returns env with miri isolation disabled.
func MiriEnvironment(env Environment) Environment {
	return env.With(MiriFlagsVar, MiriFlags)
}

// CleanCommand composes the invocation that removes build artifacts.
func CleanCommand() Command {
	return Command{ToolchainBinary, "clean"}
}
