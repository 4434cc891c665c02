package app

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

func (a *App) planVersionBump(j *job) (pipeline.Pipeline, error) {
	if _, err := semver.StrictNewVersion(j.Version); err != nil {
		verr := zerr.With(zerr.Wrap(domain.ErrInvalidVersion, "cannot bump to \""+j.Version+"\""), "version", j.Version)
		return pipeline.Pipeline{}, zerr.With(verr, "reason", err.Error())
	}

	path := domain.ManifestPath(j.root)
	version := j.Version
	return pipeline.Pipeline{Steps: []pipeline.Step{
		pipeline.Do("upver "+version, func(context.Context) error {
			return a.bumpVersion(path, version)
		}),
	}}, nil
}

// bumpVersion rewrites the manifest in place. The write is not atomic.
func (a *App) bumpVersion(path, version string) error {
	data, err := a.workspace.ReadFile(path)
	if err != nil {
		return zerr.With(failure(domain.ErrManifestRead, "cannot read "+domain.ManifestFileName, err), "path", path)
	}

	if current, err := a.manifest.Version(data); err != nil {
		a.logger.Warn("current version is unknown: " + err.Error())
	} else {
		a.logger.Info("bumping version " + current + " → " + version)
	}

	out := domain.BumpVersion(string(data), version)
	if err := a.workspace.WriteFile(path, []byte(out)); err != nil {
		return zerr.With(failure(domain.ErrManifestWrite, "cannot write "+domain.ManifestFileName, err), "path", path)
	}
	return nil
}
