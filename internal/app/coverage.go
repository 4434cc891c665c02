package app

import (
	"context"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

// planCoverage builds and tests with instrumentation, then renders the
// report. Raw profiles are removed afterwards even when a step failed.
// Flags are ignored: the report reads binaries from ./target/debug.
func (a *App) planCoverage(j *job) (pipeline.Pipeline, error) {
	format, err := domain.ParseCoverageFormat(j.settings.Format(j.Format))
	if err != nil {
		return pipeline.Pipeline{}, err
	}

	cfg, err := domain.NewConfig(domain.Flags{}, a.host.HostOS())
	if err != nil {
		return pipeline.Pipeline{}, err
	}

	env := domain.CoverageEnvironment(domain.Environment{})
	cleanup := pipeline.Do("cov cleanup", func(context.Context) error {
		return a.removeProfiles(j.root)
	})

	return pipeline.Pipeline{
		Steps: []pipeline.Step{
			j.exec("cov build", cfg.Command("build"), env),
			j.exec("cov test", cfg.Command("test"), env),
			j.exec("cov report", domain.CoverageReportCommand(format), env),
		},
		Finally: &cleanup,
	}, nil
}

func (a *App) removeProfiles(root string) error {
	paths, err := a.workspace.Glob(root, domain.ProfileGlob)
	if err != nil {
		return failure(domain.ErrCleanupFailed, "cannot list raw profiles", err)
	}
	if err := a.workspace.Remove(paths); err != nil {
		return failure(domain.ErrCleanupFailed, "cannot remove raw profiles", err)
	}
	return nil
}
