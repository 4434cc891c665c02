package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/adapters/logger"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// newTestLogger creates a logger writing to a buffer with colours disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "some message", goldenName: "info_basic"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("connection refused"), "failed to load manifest"),
				"failed to bump version",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "stdlib chain is printed whole",
			err: fmt.Errorf("failed to initialize: %w",
				fmt.Errorf("failed to connect: %w", errors.New("connection refused"))),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "metadata on main error",
			err: func() error {
				err := zerr.Wrap(errors.New("exit status 101"), "cargo build failed")
				err = zerr.With(err, "command", "cargo build")
				return zerr.With(err, "exit_code", 101)
			}(),
			goldenName: "error_metadata_main",
		},
		{
			name:       "metadata on plain error folds into it",
			err:        zerr.With(errors.New("permission denied"), "path", "Cargo.toml"),
			goldenName: "error_metadata_folded",
		},
		{
			name: "unsupported architecture",
			err: func() error {
				_, err := domain.ResolveTarget(domain.HostLinux, "riscv")
				return err
			}(),
			goldenName: "error_unsupported_arch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetJSON(true)

		err := zerr.With(zerr.Wrap(domain.ErrCommandFailed, "cargo test failed"), "exit_code", 101)
		lg.Error(err)

		out := buf.String()
		assert.Contains(t, out, `"level":"ERROR"`)
		assert.Contains(t, out, `"error"`)
		assert.Contains(t, out, "cargo test failed")
		assert.Contains(t, out, "exit_code")
		assert.NotContains(t, out, "✗")
	})

	t.Run("disabled", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetJSON(false)
		lg.Error(errors.New("error in pretty mode"))

		g := goldie.New(t)
		g.Assert(t, "setjson_disabled", buf.Bytes())
	})
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("pretty"))
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("json"))
	jsonOut := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("pretty again"))
	back := buf.String()

	assert.Contains(t, pretty, "✗")
	assert.Contains(t, jsonOut, `"error"`)
	assert.NotContains(t, jsonOut, "✗")
	assert.Contains(t, back, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Info(fmt.Sprintf("info %d", i))
			lg.Warn("warn")
			lg.Error(errors.New("error"))
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		lg.SetJSON(true)
		lg.SetJSON(false)
	}()
	wg.Wait()
}
