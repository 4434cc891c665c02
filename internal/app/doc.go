package app

import (
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

// planDoc ignores every flag: documentation always builds on the nightly
// channel so docs.rs-only attributes are checked.
func (a *App) planDoc(j *job) (pipeline.Pipeline, error) {
	env := domain.DocEnvironment(domain.Environment{})
	return pipeline.Pipeline{Steps: []pipeline.Step{
		j.exec("doc", domain.DocCommand(), env),
	}}, nil
}
