// Package shell runs toolchain invocations as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// Executor implements ports.Executor using os/exec, attaching a PTY where the
// platform supports one so that child tools keep their coloured output.
type Executor struct {
	usePTY bool
}

// NewExecutor creates an Executor that prefers a PTY.
func NewExecutor() *Executor {
	return &Executor{usePTY: true}
}

// NewPipeExecutor creates an Executor that always uses plain pipes, keeping
// stdout and stderr separate.
func NewPipeExecutor() *Executor {
	return &Executor{}
}

// Execute runs the invocation and waits for it to exit.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error {
	if len(inv.Command) == 0 {
		return nil
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	wait, err := start(command(ctx, inv), stdout, stderr, e.usePTY)
	if errors.Is(err, pty.ErrUnsupported) {
		wait, err = start(command(ctx, inv), stdout, stderr, false)
	}
	if err != nil {
		return commandFailed(inv, err, -1)
	}

	if err := wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return commandFailed(inv, err, exitCode)
	}
	return nil
}

// command builds the exec.Cmd with the invocation's environment layered over
// the inherited one.
func command(ctx context.Context, inv domain.Invocation) *exec.Cmd {
	name := inv.Command.Name()
	env := resolveEnvironment(os.Environ(), inv.Env.Pairs())

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, inv.Command.Args()...) //nolint:gosec // toolchain command
	cmd.Args[0] = name
	cmd.Env = env
	cmd.Dir = inv.Dir
	return cmd
}

// start launches cmd and returns a function that waits for the process and
// its output to drain.
func start(cmd *exec.Cmd, stdout, stderr io.Writer, usePTY bool) (func() error, error) {
	if usePTY {
		ptmx, err := pty.Start(cmd)
		if err != nil {
			return nil, err
		}
		ioDone := make(chan struct{})
		go func() {
			defer close(ioDone)
			// A PTY merges both streams into one.
			_, _ = io.Copy(stdout, ptmx)
		}()
		return func() error {
			err := cmd.Wait()
			<-ioDone
			_ = ptmx.Close()
			return err
		}, nil
	}

	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

func commandFailed(inv domain.Invocation, cause error, exitCode int) error {
	err := zerr.Wrap(domain.ErrCommandFailed, inv.Label()+" failed")
	err = zerr.With(err, "command", inv.Command.String())
	err = zerr.With(err, "exit_code", exitCode)
	if inv.Dir != "" {
		err = zerr.With(err, "dir", inv.Dir)
	}
	return zerr.With(err, "reason", cause.Error())
}

// resolveEnvironment overlays the invocation variables on the inherited
// environment. Later entries win.
func resolveEnvironment(sysEnv, overrides []string) []string {
	keys := make([]string, 0, len(sysEnv)+len(overrides))
	values := make(map[string]string, len(sysEnv)+len(overrides))

	for _, entry := range append(append([]string(nil), sysEnv...), overrides...) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := values[k]; !seen {
			keys = append(keys, k)
		}
		values[k] = v
	}

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+values[k])
	}
	return result
}

// lookPath searches the PATH found in env rather than the caller's PATH.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
