package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for progress output.
// It decouples telemetry collection from presentation logic.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop flushes any buffered output.
	Stop() error

	// OnPlanEmit is called once with the names of all planned steps in order.
	OnPlanEmit(steps []string)

	// OnStepStart is called when a step begins execution.
	// parentID is empty for top-level steps.
	OnStepStart(spanID, parentID, name string, startTime time.Time)

	// OnStepLog is called when a step emits output.
	// data may contain partial lines or ANSI sequences.
	OnStepLog(spanID string, data []byte)

	// OnStepComplete is called when a step finishes; err is nil on success.
	OnStepComplete(spanID string, endTime time.Time, err error)
}
