package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rlink/internal/core/ports"
)

// NodeID is the unique identifier for the options loader Graft node.
const NodeID graft.ID = "adapter.options_loader"

func init() {
	graft.Register(graft.Node[ports.OptionsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OptionsLoader, error) {
			return NewLoader(), nil
		},
	})
}
