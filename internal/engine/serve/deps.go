package serve

import (
	"context"

	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildLibsFromSourceOption is the option key that declares whether
// dependency libraries are rebuilt from source during a serve session.
const BuildLibsFromSourceOption = "buildLibsFromSource"

// Mode says how dependency projects are consumed during a serve session.
type Mode int

const (
	// SourceBuild rebuilds dependency libraries from workspace sources,
	// using a synthesized compiler config to resolve them directly.
	SourceBuild Mode = iota

	// ArtifactConsumption assumes dependency libraries are pre-built and
	// uses the declared compiler config unmodified.
	ArtifactConsumption
)

func (m Mode) String() string {
	if m == ArtifactConsumption {
		return "artifact-consumption"
	}
	return "source-build"
}

// SelectMode resolves the dependency mode. Precedence: an explicit user
// choice beats the effective option value, which beats the default of
// building from source.
func SelectMode(effective domain.Options, userChoice *bool) Mode {
	if userChoice != nil {
		return modeFor(*userChoice)
	}
	if fromSource, ok := effective.Bool(BuildLibsFromSourceOption); ok {
		return modeFor(fromSource)
	}
	return SourceBuild
}

func modeFor(buildLibsFromSource bool) Mode {
	if buildLibsFromSource {
		return SourceBuild
	}
	return ArtifactConsumption
}

// PrepareSourceBuild synthesizes the session compiler config and rewrites
// the compiler config path inside buildOptions, so every consumer of that
// shared options object observes the synthesized path. It returns the full
// dependency closure of project. A synthesis failure propagates unwrapped
// because a missing compiler config makes the subsequent build meaningless.
func PrepareSourceBuild(
	ctx context.Context,
	synthesizer ports.CompilerConfigSynthesizer,
	buildOptions domain.Options,
	project, targetName string,
	graph *domain.WorkspaceGraph,
) ([]domain.DependencyNode, error) {
	configPath := buildOptions.String(CompilerConfigOption)
	if configPath == "" {
		return nil, zerr.With(domain.ErrMissingCompilerConfig, "project", project)
	}

	tmp, err := synthesizer.Synthesize(ctx, configPath, project, targetName, graph)
	if err != nil {
		return nil, err
	}

	buildOptions[CompilerConfigOption] = tmp.Path
	return tmp.Dependencies, nil
}
