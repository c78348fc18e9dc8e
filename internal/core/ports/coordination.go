package ports

import "context"

// CoordinationRunner runs the rebuild-trigger side of the coordination hook:
// it watches the source roots of in-workspace dependencies and executes the
// scoped rebuild command when they change.
//
//go:generate mockgen -source=coordination.go -destination=mocks/mock_coordination.go -package=mocks
type CoordinationRunner interface {
	// Watch blocks until ctx is cancelled, running command whenever a file
	// under one of roots changes. Change bursts are coalesced; runs are
	// serialized.
	Watch(ctx context.Context, roots []string, command string) error
}
