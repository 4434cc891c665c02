// Package main is the entry point for the autd3-link-soem build tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/shinolab/autd3-link-soem/cmd/build/commands"
	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	_ "github.com/shinolab/autd3-link-soem/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// jsonSwitch is implemented by loggers that can emit JSON.
type jsonSwitch interface {
	SetJSON(enabled bool)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, func() {}, err
		}
		return c, func() {
			if err := c.Shutdown(context.WithoutCancel(ctx)); err != nil {
				c.Logger.Warn("failed to shut down tracing: " + err.Error())
			}
		}, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitFailure
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, commands.WithJSONLogs(func(enabled bool) {
		if s, ok := components.Logger.(jsonSwitch); ok {
			s.SetJSON(enabled)
		}
	}))
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		if domain.IsValidationError(err) {
			return domain.ExitValidation
		}
		return domain.ExitFailure
	}
	return domain.ExitSuccess
}
