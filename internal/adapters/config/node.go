package config

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/goldbuild/gold/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewFileLoader(DefaultFilename), nil
		},
	})
}
