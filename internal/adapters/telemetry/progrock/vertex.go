package progrock

import (
	"github.com/vito/progrock"

	"github.com/goldbuild/gold/internal/core/ports"
)

var _ ports.Span = (*Vertex)(nil)

// Vertex implements ports.Span wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Write records output on the vertex's stdout stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// Done marks the vertex as finished, successfully or with an error.
func (v *Vertex) Done(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as skipped because it was up to date.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
