package ports

import (
	"context"

	"go.trai.ch/usher/internal/core/domain"
)

// EngineInfo describes the installed delegate build engine.
type EngineInfo struct {
	// Version is the installed engine version, e.g. "16.1.0".
	Version string
	// PackageRoot is the directory the engine is installed under.
	PackageRoot string
}

// EngineProber discovers the installed delegate build engine.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type EngineProber interface {
	// Probe locates the delegate engine in the workspace rooted at root.
	Probe(root string) (EngineInfo, error)
}

// ServeRequest carries everything the delegate dev server needs for one
// session.
type ServeRequest struct {
	// Engine is the probed delegate engine installation.
	Engine EngineInfo

	// Options are the adapted delegate options.
	Options domain.Options

	// BundlerConfig produces the bundler configuration. The delegate may call
	// it again on every rebuild; implementations must be re-entrant and
	// perform no I/O beyond a memoized overlay load.
	BundlerConfig func() (*domain.BundlerConfig, error)

	// IndexTransformPath is the optional index document transform, already
	// validated to exist. Empty when not configured.
	IndexTransformPath string

	// Logger overrides the engine's own logger for this session. The serve
	// pipeline uses it to install a filtered warning channel.
	Logger Logger
}

// DelegateEngine invokes the external dev server. The call blocks for the
// lifetime of the serve session; results are the delegate's own and are
// forwarded unmodified.
type DelegateEngine interface {
	Serve(ctx context.Context, req *ServeRequest) error
}
