// Package telemetry provides ports.Tracer implementations.
package telemetry

import (
	"context"

	"github.com/goldbuild/gold/internal/core/ports"
)

var _ ports.Tracer = (*NoOpTracer)(nil)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// EmitPlan does nothing.
func (t *NoOpTracer) EmitPlan(_ context.Context, _ []string) {}

// Close does nothing.
func (t *NoOpTracer) Close() error { return nil }

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// Write does nothing and reports the input consumed.
func (s *NoOpSpan) Write(p []byte) (int, error) { return len(p), nil }

// Done does nothing.
func (s *NoOpSpan) Done(_ error) {}

// Cached does nothing.
func (s *NoOpSpan) Cached() {}
