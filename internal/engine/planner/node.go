package planner

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/goldbuild/gold/internal/adapters/fs"
	"github.com/goldbuild/gold/internal/adapters/state"
	"github.com/goldbuild/gold/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.DetectorNodeID,
			state.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			detector, err := graft.Dep[ports.ChangeDetector](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewPlanner(detector, store), nil
		},
	})
}
