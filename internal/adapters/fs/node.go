package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rlink/internal/core/ports"
)

// NodeID is the unique identifier for the path verifier Graft node.
const NodeID graft.ID = "adapter.path_verifier"

func init() {
	graft.Register(graft.Node[ports.PathVerifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathVerifier, error) {
			return NewVerifier(), nil
		},
	})
}
