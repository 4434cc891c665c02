package shell_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/adapters/shell"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func shInvocation(script string) domain.Invocation {
	return domain.Invocation{
		Name:    "sh",
		Command: domain.Command{"sh", "-c", script},
	}
}

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	return zErr.Metadata()
}

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	skipOnWindows(t)

	var stdout bytes.Buffer
	err := shell.NewExecutor().Execute(t.Context(), shInvocation("echo line1; echo line2"), &stdout, io.Discard)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "line1")
	assert.Contains(t, stdout.String(), "line2")
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	skipOnWindows(t)

	var stdout bytes.Buffer
	err := shell.NewExecutor().Execute(t.Context(), shInvocation("printf part1; sleep 0.1; echo part2"), &stdout, io.Discard)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "part1part2")
}

func TestExecutor_Execute_Environment(t *testing.T) {
	skipOnWindows(t)

	inv := shInvocation(`echo "$RUSTFLAGS|$LLVM_PROFILE_FILE"`)
	inv.Env = domain.Environment{}.
		With("RUSTFLAGS", "-C instrument-coverage").
		With("LLVM_PROFILE_FILE", "%m-%p.profraw")

	var stdout bytes.Buffer
	require.NoError(t, shell.NewPipeExecutor().Execute(t.Context(), inv, &stdout, io.Discard))

	assert.Equal(t, "-C instrument-coverage|%m-%p.profraw\n", stdout.String())
	_, leaked := os.LookupEnv("LLVM_PROFILE_FILE")
	assert.False(t, leaked, "invocation variables must not leak into the caller")
}

func TestExecutor_Execute_InheritsEnvironment(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("SOEM_BUILD_INHERITED", "from-parent")

	var stdout bytes.Buffer
	err := shell.NewPipeExecutor().Execute(t.Context(), shInvocation("echo $SOEM_BUILD_INHERITED"), &stdout, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "from-parent\n", stdout.String())
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), 0o600))

	inv := shInvocation("cat marker.txt")
	inv.Dir = dir

	var stdout bytes.Buffer
	require.NoError(t, shell.NewPipeExecutor().Execute(t.Context(), inv, &stdout, io.Discard))
	assert.Equal(t, "here", stdout.String())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.NotEqual(t, dir, cwd, "caller working directory must be unchanged")
}

func TestExecutor_Execute_PipesKeepStreamsApart(t *testing.T) {
	skipOnWindows(t)

	var stdout, stderr bytes.Buffer
	err := shell.NewPipeExecutor().Execute(t.Context(), shInvocation("echo out; echo err >&2"), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	for name, exec := range map[string]*shell.Executor{
		"pty":  shell.NewExecutor(),
		"pipe": shell.NewPipeExecutor(),
	} {
		t.Run(name, func(t *testing.T) {
			err := exec.Execute(t.Context(), shInvocation("exit 3"), io.Discard, io.Discard)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCommandFailed)

			meta := metadata(t, err)
			assert.Equal(t, 3, meta["exit_code"])
			assert.Equal(t, `sh -c "exit 3"`, meta["command"])
		})
	}
}

func TestExecutor_Execute_MissingBinary(t *testing.T) {
	inv := domain.Invocation{Command: domain.Command{"definitely-not-a-real-binary-xyz"}}

	err := shell.NewExecutor().Execute(t.Context(), inv, io.Discard, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, -1, metadata(t, err)["exit_code"])
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	assert.NoError(t, shell.NewExecutor().Execute(t.Context(), domain.Invocation{}, nil, nil))
}

func TestResolveEnvironment(t *testing.T) {
	got := shell.ResolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/root", "RUSTFLAGS=-D warnings", "malformed"},
		[]string{"RUSTFLAGS=-C instrument-coverage", "LLVM_PROFILE_FILE=%m-%p.profraw"},
	)

	assert.Equal(t, []string{
		"PATH=/usr/bin",
		"HOME=/root",
		"RUSTFLAGS=-C instrument-coverage",
		"LLVM_PROFILE_FILE=%m-%p.profraw",
	}, got)
}

func TestLookPath(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	bin := filepath.Join(dir, "cargo")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // test executable
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grcov"), []byte(""), 0o600))

	got, err := shell.LookPath("cargo", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = shell.LookPath("grcov", []string{"PATH=" + dir})
	require.Error(t, err, "non-executable files are skipped")

	_, err = shell.LookPath("cargo", nil)
	require.Error(t, err)
}
