package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/shinolab/autd3-link-soem/internal/core/ports"
)

// Provider owns the SDK tracer provider whose only processor is the renderer bridge.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates a Provider reporting every span to renderer.
func NewProvider(renderer ports.Renderer) *Provider {
	return &Provider{
		tp: sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(NewBridge(renderer)),
		),
	}
}

// Install registers the provider as the global OpenTelemetry provider.
func (p *Provider) Install() *Provider {
	otel.SetTracerProvider(p.tp)
	return p
}

// TracerProvider returns the underlying SDK provider.
func (p *Provider) TracerProvider() *sdktrace.TracerProvider {
	return p.tp
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
