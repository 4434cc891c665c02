// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// Executor defines the interface for running external toolchain processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and blocks until the process exits.
	//
	// The invocation's environment is layered over the inherited process
	// environment for this call only, and its Dir, when set, is the working
	// directory of the child. The caller's environment and working directory
	// are never changed.
	//
	// It returns an error wrapping domain.ErrCommandFailed if the process
	// cannot be started or exits with a nonzero status.
	Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error
}
