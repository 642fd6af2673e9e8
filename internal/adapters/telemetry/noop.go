package telemetry

import (
	"context"

	"go.trai.ch/refmap/internal/core/ports"
)

// NoOpTracer is a ports.Tracer that records nothing. It is the default
// when no telemetry backend is configured.
type NoOpTracer struct{}

// NewNoOpTracer creates a tracer whose spans do nothing.
func NewNoOpTracer() ports.Tracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is the ports.Span counterpart of NoOpTracer.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// SetAttribute does nothing.
func (s *NoOpSpan) SetAttribute(_ string, _ any) {}
