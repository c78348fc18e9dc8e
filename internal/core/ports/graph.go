package ports

import (
	"context"

	"go.trai.ch/usher/internal/core/domain"
)

// GraphReader loads the cached workspace graph snapshot. The graph is built
// and cached externally; this port only reads it.
//
//go:generate mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type GraphReader interface {
	// Read returns the workspace graph for the workspace rooted at root.
	// The returned graph must be treated as immutable.
	Read(ctx context.Context, root string) (*domain.WorkspaceGraph, error)
}
