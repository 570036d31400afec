// Package progrock provides the Progrock implementation of the telemetry
// adapter.
package progrock

import (
	"context"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/goldbuild/gold/internal/core/ports"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer using the progrock library. Each build
// action becomes a vertex on the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a vertex for one unit of work.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// EmitPlan records the planned target set as a single vertex.
func (r *Recorder) EmitPlan(_ context.Context, targets []string) {
	v := r.rec.Vertex(digest.FromString("plan"), "plan")
	_, _ = v.Stdout().Write([]byte(strings.Join(targets, "\n") + "\n"))
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
