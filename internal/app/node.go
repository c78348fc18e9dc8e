package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/usher/internal/adapters/cachedir"
	"go.trai.ch/usher/internal/adapters/coordination"
	"go.trai.ch/usher/internal/adapters/engine"
	"go.trai.ch/usher/internal/adapters/graph"
	"go.trai.ch/usher/internal/adapters/logger"
	"go.trai.ch/usher/internal/adapters/tsconfig"
	"go.trai.ch/usher/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cachedir.NodeID,
			graph.NodeID,
			tsconfig.NodeID,
			engine.ProberNodeID,
			engine.ServerNodeID,
			coordination.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			paths, err := graft.Dep[*cachedir.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			graphReader, err := graft.Dep[ports.GraphReader](ctx)
			if err != nil {
				return nil, err
			}
			synthesizer, err := graft.Dep[ports.CompilerConfigSynthesizer](ctx)
			if err != nil {
				return nil, err
			}
			prober, err := graft.Dep[ports.EngineProber](ctx)
			if err != nil {
				return nil, err
			}
			delegate, err := graft.Dep[ports.DelegateEngine](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CoordinationRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(paths, graphReader, synthesizer, prober, delegate, runner, log),
				Logger: log,
			}, nil
		},
	})
}
