package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CoverageFormat is an output format understood by grcov.
type CoverageFormat uint8

const (
	// CoverageLcov writes an lcov tracefile.
	CoverageLcov CoverageFormat = iota + 1
	// CoverageHTML writes an HTML report.
	CoverageHTML
	// CoverageMarkdown writes a markdown summary.
	CoverageMarkdown
)

// DefaultCoverageFormat is used when no format is requested.
const DefaultCoverageFormat = CoverageLcov

// ParseCoverageFormat validates a --format value.
func ParseCoverageFormat(s string) (CoverageFormat, error) {
	switch s {
	case "lcov":
		return CoverageLcov, nil
	case "html":
		return CoverageHTML, nil
	case "markdown":
		return CoverageMarkdown, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrInvalidFormat, "unsupported coverage format"), "format", s)
	}
}

func (f CoverageFormat) String() string {
	switch f {
	case CoverageLcov:
		return "lcov"
	case CoverageHTML:
		return "html"
	case CoverageMarkdown:
		return "markdown"
	}
	return "unknown"
}

// Coverage instrumentation settings.
const (
	InstrumentFlagsVar    = "RUSTFLAGS"
	InstrumentFlags       = "-C instrument-coverage"
	ProfileFileVar        = "LLVM_PROFILE_FILE"
	ProfileFilePattern    = "%m-%p.profraw"
	CoverageOutputDir     = "./coverage"
	CoverageBinaryPath    = "./target/debug"
	CoverageKeepOnly      = "src/**/*.rs"
	CoverageExclStart     = "GRCOV_EXCL_START"
	CoverageExclStop      = "GRCOV_EXCL_STOP"
	coverageExclLineToken = "GRCOV_EXCL_LINE"
)

// CoverageExclusions are the line patterns grcov ignores, in order.
var CoverageExclusions = []string{
	coverageExclLineToken,
	`#\[derive`,
	`#\[error`,
	`#\[bitfield_struct`,
	`unreachable!`,
	`unimplemented!`,
	`tracing::(debug|trace|info|warn|error)!\([\s\S]*\);`,
}

// CoverageEnvironment returns env with the instrumentation variables set.
func CoverageEnvironment(env Environment) Environment {
	return env.With(InstrumentFlagsVar, InstrumentFlags).With(ProfileFileVar, ProfileFilePattern)
}

// CoverageReportCommand composes the grcov invocation for format.
func CoverageReportCommand(format CoverageFormat) Command {
	return Command{
		CoverageBinary,
		".",
		"-s", ".",
		"--binary-path", CoverageBinaryPath,
		"--llvm",
		"--branch",
		"--ignore-not-existing",
		"-o", CoverageOutputDir,
		"-t", format.String(),
		"--excl-line", strings.Join(CoverageExclusions, "|"),
		"--keep-only", CoverageKeepOnly,
		"--excl-start", CoverageExclStart,
		"--excl-stop", CoverageExclStop,
	}
}
