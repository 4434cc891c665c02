// Package telemetry records pipeline steps as OpenTelemetry spans and
// streams them to a ports.Renderer.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/shinolab/autd3-link-soem/internal/core/ports"
)

// InstrumentationName names the tracer handed out by the provider.
const InstrumentationName = "github.com/shinolab/autd3-link-soem"

// CommandAttribute is the span attribute holding the rendered command line.
const CommandAttribute = "command"

// OTelTracer implements ports.Tracer using OpenTelemetry. Span output is
// batched and forwarded to the renderer.
type OTelTracer struct {
	tracer   trace.Tracer
	renderer ports.Renderer
	shutdown func(context.Context) error
}

// NewOTelTracer creates an OTelTracer on provider. A nil renderer drops
// step output into span events instead.
func NewOTelTracer(provider trace.TracerProvider, renderer ports.Renderer) *OTelTracer {
	return &OTelTracer{
		tracer:   provider.Tracer(InstrumentationName),
		renderer: renderer,
	}
}

// WithShutdown registers fn to run on Shutdown, typically the provider's own.
func (t *OTelTracer) WithShutdown(fn func(context.Context) error) *OTelTracer {
	t.shutdown = fn
	return t
}

// Shutdown ends tracing and flushes the renderer.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	if t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var startOpts []trace.SpanStartOption
	if cfg.Command != "" {
		startOpts = append(startOpts, trace.WithAttributes(attribute.String(CommandAttribute, cfg.Command)))
	}

	ctx, span := t.tracer.Start(ctx, name, startOpts...)

	var batcher *LineBatcher
	if t.renderer != nil {
		spanID := span.SpanContext().SpanID().String()
		renderer := t.renderer
		batcher = NewLineBatcher(0, 0, func(data []byte) {
			renderer.OnStepLog(spanID, data)
		})
	}

	return ctx, &OTelSpan{span: span, batcher: batcher}
}

// EmitPlan records the plan on the current span and announces it to the renderer.
func (t *OTelTracer) EmitPlan(ctx context.Context, stepNames []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("steps", stepNames),
		))
	}

	if t.renderer != nil {
		t.renderer.OnPlanEmit(stepNames)
	}
}

// OTelSpan implements ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	batcher *LineBatcher
}

// End flushes buffered output and completes the span.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
	}
	s.span.End()
}

// RecordError records err and marks the span as failed.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write forwards p to the renderer, or records it as a span event when no
// renderer is attached.
func (s *OTelSpan) Write(p []byte) (int, error) {
	if s.batcher != nil {
		return s.batcher.Write(p)
	}
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}
