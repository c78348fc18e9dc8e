package cachedir

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the cache directory resolver Graft node.
const NodeID graft.ID = "adapter.cachedir"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Resolver, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewResolver(FindRoot(cwd)), nil
		},
	})
}
