package domain

// Intent is a developer intent the CLI dispatches on.
type Intent uint8

const (
	// IntentBuild compiles the library and, by default, its examples.
	IntentBuild Intent = iota + 1
	// IntentLint runs clippy in strict mode.
	IntentLint
	// IntentDoc generates documentation on the nightly channel.
	IntentDoc
	// IntentTest runs the test suite, optionally under miri.
	IntentTest
	// IntentRun runs one of the bundled examples.
	IntentRun
	// IntentClear removes build artifacts.
	IntentClear
	// IntentCoverage produces a coverage report.
	IntentCoverage
	// IntentVersionBump rewrites the manifest version.
	IntentVersionBump
	// IntentUnsafeAudit lists source files that contain unsafe code.
	IntentUnsafeAudit
)

var intentNames = map[Intent]string{
	IntentBuild:       "build",
	IntentLint:        "lint",
	IntentDoc:         "doc",
	IntentTest:        "test",
	IntentRun:         "run",
	IntentClear:       "clear",
	IntentCoverage:    "cov",
	IntentVersionBump: "upver",
	IntentUnsafeAudit: "glob_unsafe",
}

// Intents returns every intent in declaration order.
func Intents() []Intent {
	return []Intent{
		IntentBuild,
		IntentLint,
		IntentDoc,
		IntentTest,
		IntentRun,
		IntentClear,
		IntentCoverage,
		IntentVersionBump,
		IntentUnsafeAudit,
	}
}

// String returns the command name of the intent.
func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// ParseIntent returns the intent for a command name.
func ParseIntent(name string) (Intent, bool) {
	for intent, n := range intentNames {
		if n == name {
			return intent, true
		}
	}
	return 0, false
}
