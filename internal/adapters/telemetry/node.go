package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/goldbuild/gold/internal/adapters/telemetry/progrock"
	"github.com/goldbuild/gold/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			// Progress recording is opt-out so tests and scripts can keep
			// plain log output.
			if os.Getenv("GOLD_NO_PROGRESS") != "" {
				return NewNoOpTracer(), nil
			}
			return progrock.New(), nil
		},
	})
}
