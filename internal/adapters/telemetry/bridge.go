package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/shinolab/autd3-link-soem/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and turns span lifecycle events
// into renderer callbacks.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart announces the step and echoes its command line, if any.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var parentID string
	if parentSpan := trace.SpanFromContext(parent); parentSpan.SpanContext().IsValid() {
		parentID = parentSpan.SpanContext().SpanID().String()
	}

	spanID := sc.SpanID().String()
	b.renderer.OnStepStart(spanID, parentID, s.Name(), s.StartTime())

	for _, kv := range s.Attributes() {
		if string(kv.Key) == CommandAttribute {
			b.renderer.OnStepLog(spanID, []byte("$ "+kv.Value.AsString()+"\n"))
		}
	}
}

// OnEnd reports the step outcome.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "step failed"
		}
		err = errors.New(desc)
	}

	b.renderer.OnStepComplete(sc.SpanID().String(), s.EndTime(), err)
}

// ForceFlush does nothing; callbacks are delivered synchronously.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown flushes the renderer.
func (b *Bridge) Shutdown(_ context.Context) error {
	if b.renderer == nil {
		return nil
	}
	return b.renderer.Stop()
}
