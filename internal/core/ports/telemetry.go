package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals that a set of steps is planned for execution.
	EmitPlan(ctx context.Context, stepNames []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Command is the rendered command line the span executes, if any.
	Command string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithCommand records the rendered command line on the span.
func WithCommand(cmd string) SpanOption {
	return func(c *SpanConfig) {
		c.Command = cmd
	}
}
