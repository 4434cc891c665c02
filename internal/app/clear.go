package app

import (
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

func (a *App) planClear(j *job) (pipeline.Pipeline, error) {
	return pipeline.Pipeline{Steps: []pipeline.Step{
		j.exec("clean", domain.CleanCommand(), domain.Environment{}),
	}}, nil
}
