package rhome

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rlink/internal/adapters/fs"
	"go.trai.ch/rlink/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "adapter.rhome_resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			verifier, err := graft.Dep[ports.PathVerifier](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(verifier), nil
		},
	})
}
