// Package app implements the application layer for the build tool.
//
// Each intent has a planner that turns a Request into a pipeline of steps.
// Planning validates every user input, so a rejected request never reaches
// the toolchain.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/core/ports"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

// StepRunner executes a planned pipeline.
type StepRunner interface {
	Run(ctx context.Context, p pipeline.Pipeline) (pipeline.Report, error)
}

// App represents the main application logic.
type App struct {
	runner    StepRunner
	renderer  ports.Renderer
	host      ports.HostDetector
	settings  ports.SettingsLoader
	workspace ports.Workspace
	scanner   ports.UnsafeScanner
	manifest  ports.ManifestReader
	logger    ports.Logger
	out       io.Writer
}

// New creates a new App instance.
func New(
	runner StepRunner,
	renderer ports.Renderer,
	host ports.HostDetector,
	settings ports.SettingsLoader,
	workspace ports.Workspace,
	scanner ports.UnsafeScanner,
	manifest ports.ManifestReader,
	log ports.Logger,
) *App {
	return &App{
		runner:    runner,
		renderer:  renderer,
		host:      host,
		settings:  settings,
		workspace: workspace,
		scanner:   scanner,
		manifest:  manifest,
		logger:    log,
		out:       os.Stdout,
	}
}

// WithOutput sets the writer dry runs print to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Request is one developer intent with its raw arguments.
type Request struct {
	Intent domain.Intent
	// Root is the project root; empty means the current directory.
	Root string
	// DryRun prints the planned steps instead of running them.
	DryRun bool
	Flags  domain.Flags
	// Miri runs the tests under the miri interpreter.
	Miri bool
	// Example is the `run` target.
	Example string
	// Format is the coverage report format; empty means the settings default.
	Format string
	// Version is the `util upver` argument.
	Version string
}

// job is a Request bound to a resolved root and its settings.
type job struct {
	Request
	root     string
	settings *domain.Settings
}

type planner func(a *App, j *job) (pipeline.Pipeline, error)

var planners = map[domain.Intent]planner{
	domain.IntentBuild:       (*App).planBuild,
	domain.IntentLint:        (*App).planLint,
	domain.IntentDoc:         (*App).planDoc,
	domain.IntentTest:        (*App).planTest,
	domain.IntentRun:         (*App).planRun,
	domain.IntentClear:       (*App).planClear,
	domain.IntentCoverage:    (*App).planCoverage,
	domain.IntentVersionBump: (*App).planVersionBump,
	domain.IntentUnsafeAudit: (*App).planUnsafeAudit,
}

// Run plans req and executes the plan, or prints it for a dry run.
func (a *App) Run(ctx context.Context, req Request) error {
	plan, ok := planners[req.Intent]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnknownIntent, "no handler for intent"), "intent", req.Intent.String())
	}

	root, err := resolveRoot(req.Root)
	if err != nil {
		return err
	}

	settings, err := a.settings.Load(root)
	if err != nil {
		return err
	}

	p, err := plan(a, &job{Request: req, root: root, settings: settings})
	if err != nil {
		return err
	}

	if req.DryRun {
		return a.describe(p)
	}
	return a.execute(ctx, p)
}

func (a *App) describe(p pipeline.Pipeline) error {
	for _, line := range p.Describe() {
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return zerr.Wrap(err, "failed to print plan")
		}
	}
	return nil
}

func (a *App) execute(ctx context.Context, p pipeline.Pipeline) error {
	if err := a.renderer.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start renderer")
	}

	report, err := a.runner.Run(ctx, p)
	if stopErr := a.renderer.Stop(); stopErr != nil {
		a.logger.Warn("failed to flush output: " + stopErr.Error())
	}

	for i, status := range report.Statuses {
		if status == pipeline.StatusSkipped {
			a.logger.Warn("skipped " + report.Labels[i])
		}
	}
	return err
}

// config resolves the request flags, filling unset values from the settings
// file. The host is queried once per call.
func (a *App) config(j *job) (*domain.Config, error) {
	return domain.NewConfig(j.settings.ApplyTo(j.Flags), a.host.HostOS())
}

// exec returns a step running cmd from the project root.
func (j *job) exec(name string, cmd domain.Command, env domain.Environment) pipeline.Step {
	return pipeline.Exec(domain.Invocation{Name: name, Command: cmd, Env: env, Dir: j.root})
}

func resolveRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", rootError(dir, err.Error())
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", rootError(dir, err.Error())
	}
	if !info.IsDir() {
		return "", rootError(dir, "not a directory")
	}
	return abs, nil
}

func rootError(dir, reason string) error {
	err := zerr.With(zerr.Wrap(domain.ErrRootNotFound, "cannot use "+dir+" as project root"), "dir", dir)
	return zerr.With(err, "reason", reason)
}

// failure wraps sentinel with msg and records cause as the reason.
func failure(sentinel error, msg string, cause error) error {
	return zerr.With(zerr.Wrap(sentinel, msg), "reason", cause.Error())
}
