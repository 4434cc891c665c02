package app

import (
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

func (a *App) planLint(j *job) (pipeline.Pipeline, error) {
	cfg, err := a.config(j)
	if err != nil {
		return pipeline.Pipeline{}, err
	}
	return pipeline.Pipeline{Steps: []pipeline.Step{
		j.exec("lint", domain.LintCommand(cfg), domain.Environment{}),
	}}, nil
}
