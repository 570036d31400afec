package scheduler

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/goldbuild/gold/internal/adapters/fs"
	"github.com/goldbuild/gold/internal/adapters/logger"
	"github.com/goldbuild/gold/internal/adapters/state"
	"github.com/goldbuild/gold/internal/adapters/telemetry"
	"github.com/goldbuild/gold/internal/adapters/toolchain"
	"github.com/goldbuild/gold/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			toolchain.NodeID,
			fs.DetectorNodeID,
			state.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			tc, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			detector, err := graft.Dep[ports.ChangeDetector](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScheduler(tc, detector, store, tracer, log), nil
		},
	})
}
