package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/goldbuild/gold/internal/core/ports"
)

// Graft node identifiers for the fs adapters.
const (
	HasherNodeID   graft.ID = "adapter.hasher"
	DetectorNodeID graft.ID = "adapter.change_detector"
)

func init() {
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ChangeDetector]{
		ID:        DetectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.ChangeDetector, error) {
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(hasher), nil
		},
	})
}
