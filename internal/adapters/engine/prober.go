// Package engine integrates the external delegate build engine: probing the
// installed version, adapting options to it, and running its dev server.
package engine

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnginePackageName is the npm package the delegate build engine ships as.
const EnginePackageName = "@angular-devkit/build-angular"

// Prober discovers the delegate engine installed under node_modules.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe reads the engine's package manifest in the workspace rooted at root.
func (p *Prober) Probe(root string) (ports.EngineInfo, error) {
	pkgRoot := filepath.Join(root, "node_modules", filepath.FromSlash(EnginePackageName))
	manifest := filepath.Join(pkgRoot, "package.json")

	data, err := os.ReadFile(manifest) //nolint:gosec // path derived from workspace root
	if err != nil {
		return ports.EngineInfo{}, zerr.With(
			errors.Join(domain.ErrEngineNotInstalled, err),
			"package", EnginePackageName,
		)
	}

	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ports.EngineInfo{}, zerr.With(
			errors.Join(domain.ErrEngineVersionUnknown, err),
			"manifest", manifest,
		)
	}
	if pkg.Version == "" {
		return ports.EngineInfo{}, zerr.With(
			domain.ErrEngineVersionUnknown,
			"manifest", manifest,
		)
	}

	return ports.EngineInfo{
		Version:     pkg.Version,
		PackageRoot: pkgRoot,
	}, nil
}
