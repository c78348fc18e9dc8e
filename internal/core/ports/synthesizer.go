package ports

import (
	"context"

	"go.trai.ch/usher/internal/core/domain"
)

// CompilerConfigSynthesizer generates the session-scoped compiler
// configuration used when dependency projects are rebuilt from source.
//
//go:generate mockgen -source=synthesizer.go -destination=mocks/mock_synthesizer.go -package=mocks
type CompilerConfigSynthesizer interface {
	// Synthesize writes a temporary compiler configuration derived from
	// configPath, remapping module paths so that the dependency closure of
	// project resolves to workspace sources. targetName scopes the artifact
	// location. The artifact is regenerated on every call.
	Synthesize(ctx context.Context, configPath, project, targetName string, graph *domain.WorkspaceGraph) (*domain.TempCompilerConfig, error)
}
