package app

import (
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

func (a *App) planTest(j *job) (pipeline.Pipeline, error) {
	cfg, err := a.config(j)
	if err != nil {
		return pipeline.Pipeline{}, err
	}

	if j.Miri {
		env := domain.MiriEnvironment(domain.Environment{})
		return pipeline.Pipeline{Steps: []pipeline.Step{
			j.exec("test (miri)", domain.TestCommand(cfg, true), env),
		}}, nil
	}
	return pipeline.Pipeline{Steps: []pipeline.Step{
		j.exec("test", domain.TestCommand(cfg, false), domain.Environment{}),
	}}, nil
}
