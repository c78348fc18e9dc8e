// Package tsconfig synthesizes session-scoped compiler configurations for
// source builds.
package tsconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompilerConfigSynthesizer = (*Synthesizer)(nil)

// GeneratedFileName is the name of the synthesized compiler configuration.
const GeneratedFileName = "tsconfig.generated.json"

// Synthesizer writes a temporary compiler configuration that extends the
// declared one and remaps in-workspace dependencies onto their sources. The
// artifact lives under the cache directory, scoped per target name, and is
// rewritten on every call.
type Synthesizer struct {
	root     string
	cacheDir string
	logger   ports.Logger
}

// NewSynthesizer creates a Synthesizer for the workspace rooted at root,
// writing artifacts under cacheDir.
func NewSynthesizer(root, cacheDir string, logger ports.Logger) *Synthesizer {
	return &Synthesizer{root: root, cacheDir: cacheDir, logger: logger}
}

// generatedConfig is the shape of the synthesized document. It extends the
// declared configuration, so only the remapped paths need to be emitted.
type generatedConfig struct {
	Extends         string          `json:"extends"`
	CompilerOptions compilerOptions `json:"compilerOptions"`
}

type compilerOptions struct {
	Paths map[string][]string `json:"paths"`
}

// Synthesize implements ports.CompilerConfigSynthesizer.
func (s *Synthesizer) Synthesize(
	_ context.Context,
	configPath, project, targetName string,
	graph *domain.WorkspaceGraph,
) (*domain.TempCompilerConfig, error) {
	configPath = absolutePath(s.root, configPath)
	if _, err := os.Stat(configPath); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrSynthesisFailed, err), "config", configPath)
	}

	deps := graph.Dependencies(project)

	outDir := filepath.Join(s.cacheDir, domain.TmpDirName, targetName)
	if err := os.RemoveAll(outDir); err != nil {
		return nil, errors.Join(domain.ErrSynthesisFailed, err)
	}
	if err := os.MkdirAll(outDir, domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrSynthesisFailed, err)
	}

	doc, err := Generate(s.root, configPath, outDir, deps, graph)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(outDir, GeneratedFileName)
	if err := os.WriteFile(outPath, doc, domain.FilePerm); err != nil {
		return nil, errors.Join(domain.ErrSynthesisFailed, err)
	}

	s.logger.Info(fmt.Sprintf("synthesized compiler config for %d dependencies", len(deps)))
	return &domain.TempCompilerConfig{Path: outPath, Dependencies: deps}, nil
}

// Generate renders the synthesized document. The extends reference and every
// remapped path are kept relative to outDir so the artifact stays valid if
// the workspace moves.
func Generate(root, configPath, outDir string, deps []domain.DependencyNode, graph *domain.WorkspaceGraph) ([]byte, error) {
	extends, err := filepath.Rel(outDir, configPath)
	if err != nil {
		extends = configPath
	}

	paths := make(map[string][]string)
	for _, dep := range deps {
		if dep.External {
			continue
		}
		project, ok := graph.Projects[dep.Name]
		if !ok || project.SourceRoot == "" {
			continue
		}

		source := absolutePath(root, project.SourceRoot)
		entry, err := filepath.Rel(outDir, filepath.Join(source, "index.ts"))
		if err != nil {
			continue
		}
		wildcard, err := filepath.Rel(outDir, source)
		if err != nil {
			continue
		}

		paths[dep.Name] = []string{entry}
		paths[dep.Name+"/*"] = []string{wildcard + "/*"}
	}

	doc, err := json.MarshalIndent(generatedConfig{
		Extends:         extends,
		CompilerOptions: compilerOptions{Paths: paths},
	}, "", "  ")
	if err != nil {
		return nil, errors.Join(domain.ErrSynthesisFailed, err)
	}
	return append(doc, '\n'), nil
}

func absolutePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
