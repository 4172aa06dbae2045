package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rlink/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/rlink/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rlink/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/rlink/internal/adapters/rhome"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rlink/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rlink/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			rhome.NodeID,
			shell.NodeID,
			fs.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
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

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.OptionsLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*rhome.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.PathVerifier](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, runner, verifier, log), nil
}
