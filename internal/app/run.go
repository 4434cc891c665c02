package app

import (
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

// planRun runs an example from the examples workspace. Examples always build
// for the host, so --arch is not consulted.
func (a *App) planRun(j *job) (pipeline.Pipeline, error) {
	example, err := domain.ParseExample(j.Example)
	if err != nil {
		return pipeline.Pipeline{}, err
	}

	flags := j.settings.ApplyTo(j.Flags)
	return pipeline.Single(domain.Invocation{
		Name:    "run " + example.String(),
		Command: example.RunCommand(flags.Release, flags.Features),
		Dir:     domain.ExamplesDir(j.root),
	}), nil
}
