//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var buildBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "build-e2e-*")
	if err != nil {
		panic(err)
	}

	buildBinary = filepath.Join(tmpDir, "build")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", buildBinary, "./cmd/build")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// setupE2E puts the binary and the fake toolchain in $WORK/bin ahead of PATH.
func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	fakeBin := filepath.Join(env.WorkDir, "bin")
	if err := os.MkdirAll(fakeBin, 0o750); err != nil {
		return err
	}
	for _, tool := range []string{"cargo", "cross", "grcov"} {
		if err := writeFakeTool(fakeBin, tool); err != nil {
			return err
		}
	}

	binDir := filepath.Dir(buildBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", fakeBin+string(os.PathListSeparator)+binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

// writeFakeTool installs a script that appends its invocation to $WORK/calls.log
// and fails when FAIL_ON matches its first argument.
func writeFakeTool(dir, name string) error {
	script := "#!/bin/sh\n" +
		"echo \"" + name + " $*\" >> \"$WORK/calls.log\"\n" +
		"if [ -n \"$RUSTFLAGS\" ]; then echo \"RUSTFLAGS=$RUSTFLAGS\" >> \"$WORK/calls.log\"; fi\n" +
		"if [ \"$FAIL_ON\" = \"$1\" ]; then echo \"" + name + ": $1 failed\" >&2; exit 101; fi\n"
	//nolint:gosec // the fake tool must be executable
	return os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755)
}
