package tsconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/usher/internal/adapters/cachedir"
	"go.trai.ch/usher/internal/adapters/logger"
	"go.trai.ch/usher/internal/core/ports"
)

// NodeID is the unique identifier for the compiler config synthesizer Graft node.
const NodeID graft.ID = "adapter.tsconfig"

func init() {
	graft.Register(graft.Node[ports.CompilerConfigSynthesizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cachedir.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilerConfigSynthesizer, error) {
			resolver, err := graft.Dep[*cachedir.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSynthesizer(resolver.Root(), resolver.CacheDirectory(), log), nil
		},
	})
}
