package state

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/goldbuild/gold/internal/core/ports"
)

// NodeID is the unique identifier for the record store Graft node.
const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[ports.RecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RecordStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
