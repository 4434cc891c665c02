package app

import (
	"context"
	"fmt"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/engine/pipeline"
)

func (a *App) planUnsafeAudit(j *job) (pipeline.Pipeline, error) {
	root := j.root
	return pipeline.Pipeline{Steps: []pipeline.Step{
		pipeline.Do("glob_unsafe", func(ctx context.Context) error {
			return a.auditUnsafe(ctx, root)
		}),
	}}, nil
}

// auditUnsafe writes the sorted list of source files that contain unsafe
// code, one absolute path per line.
func (a *App) auditUnsafe(ctx context.Context, root string) error {
	sources, err := a.workspace.Glob(root, domain.SourceGlob)
	if err != nil {
		return failure(domain.ErrSourceScanFailed, "cannot list source files", err)
	}

	unsafeFiles, err := a.scanner.Scan(ctx, sources)
	if err != nil {
		return failure(domain.ErrSourceScanFailed, "cannot scan source files", err)
	}

	out := domain.UnsafeListPath(root)
	if err := a.workspace.WriteFile(out, []byte(domain.FormatUnsafeList(unsafeFiles))); err != nil {
		return failure(domain.ErrAuditWrite, "cannot write "+domain.UnsafeListFileName, err)
	}

	a.logger.Info(fmt.Sprintf("%d of %d source files contain unsafe code", len(unsafeFiles), len(sources)))
	return nil
}
