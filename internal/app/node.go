package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refmap/internal/adapters/config"
	"go.trai.ch/refmap/internal/adapters/github"
	"go.trai.ch/refmap/internal/adapters/logger"
	"go.trai.ch/refmap/internal/adapters/protocol"
	"go.trai.ch/refmap/internal/adapters/telemetry"
	"go.trai.ch/refmap/internal/adapters/watcher"
	"go.trai.ch/refmap/internal/core/ports"
)

// Components bundles the constructed application surface handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			protocol.NodeID,
			github.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			protocolLoader, err := graft.Dep[ports.ProtocolLoader](ctx)
			if err != nil {
				return nil, err
			}
			source, err := graft.Dep[ports.SourceClient](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			fileWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(configLoader, protocolLoader, source, log, tracer, fileWatcher),
				Logger: log,
			}, nil
		},
	})
}
