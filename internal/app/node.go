package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/goldbuild/gold/internal/adapters/artifact"  //nolint:depguard // Wired in app layer
	"github.com/goldbuild/gold/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/goldbuild/gold/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/goldbuild/gold/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"github.com/goldbuild/gold/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/goldbuild/gold/internal/core/ports"
	"github.com/goldbuild/gold/internal/engine/planner"
	"github.com/goldbuild/gold/internal/engine/scheduler"
)

const (
	// NodeID is the unique identifier for the main App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			planner.NodeID,
			scheduler.NodeID,
			artifact.NodeID,
			state.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			plnr, err := graft.Dep[*planner.Planner](ctx)
			if err != nil {
				return nil, err
			}
			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}
			artifacts, err := graft.Dep[ports.ArtifactStore](ctx)
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
			return New(loader, plnr, sched, artifacts, store, tracer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
