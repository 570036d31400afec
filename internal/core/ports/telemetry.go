package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for recording build progress.
type Tracer interface {
	// Start begins a span for one unit of work, such as a compile or link
	// action.
	Start(ctx context.Context, name string) (context.Context, Span)

	// EmitPlan signals the set of targets planned for execution.
	EmitPlan(ctx context.Context, targets []string)

	// Close flushes the recording session.
	Close() error
}

// Span represents one unit of work in progress. Writes carry the work's
// output stream.
type Span interface {
	io.Writer

	// Done completes the span, with err recording a failure.
	Done(err error)

	// Cached marks the span's work as skipped because it was up to date.
	Cached()
}
