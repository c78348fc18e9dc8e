package engine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/usher/internal/adapters/cachedir"
	"go.trai.ch/usher/internal/adapters/logger"
	"go.trai.ch/usher/internal/core/ports"
)

// ProberNodeID is the unique identifier for the engine prober Graft node.
const ProberNodeID graft.ID = "adapter.engine.prober"

// ServerNodeID is the unique identifier for the dev server Graft node.
const ServerNodeID graft.ID = "adapter.engine.server"

func init() {
	graft.Register(graft.Node[ports.EngineProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EngineProber, error) {
			return NewProber(), nil
		},
	})

	graft.Register(graft.Node[ports.DelegateEngine]{
		ID:        ServerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cachedir.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DelegateEngine, error) {
			resolver, err := graft.Dep[*cachedir.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDevServer(resolver.Root(), resolver.CacheDirectory(), log), nil
		},
	})
}
