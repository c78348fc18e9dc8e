package serve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Option keys consulted during serve resolution.
const (
	// CompilerConfigOption names the compiler configuration file.
	CompilerConfigOption = "tsConfig"

	// BuildTargetOption references the build target backing the serve.
	BuildTargetOption = "buildTarget"

	// BundlerOverlayOption names an optional bundler config overlay file.
	BundlerOverlayOption = "customWebpackConfig"

	// IndexTransformOption names an optional index document transform.
	IndexTransformOption = "indexHtmlTransformer"
)

// CoordinationPluginName identifies the injected rebuild pipeline hook.
const CoordinationPluginName = "workspace-rebuild"

// bundlerExecutors is the allow-list of bundler-class executors that accept
// a pipeline hook. Fixed-function delegates skip coordination entirely.
var bundlerExecutors = map[string]bool{
	"@nx/webpack:webpack":                   true,
	"@nx/angular:webpack-browser":           true,
	"@angular-devkit/build-angular:browser": true,
}

// IsBundlerExecutor reports whether executor accepts bundler pipeline hooks.
func IsBundlerExecutor(executor string) bool {
	return bundlerExecutors[executor]
}

// CommandFor builds the scoped rebuild command for the internal dependency
// set. Callers must never pass an empty set: an empty --projects list means
// "all projects" to the orchestrator.
func CommandFor(targetName string, internal []domain.DependencyNode) string {
	names := make([]string, len(internal))
	for i, dep := range internal {
		names[i] = dep.Name
	}
	return fmt.Sprintf("npx nx run-many --target=%s --projects=%s", targetName, strings.Join(names, ","))
}

// InjectCoordination installs the rebuild hook into the bundler config,
// scoped to the internal subset of deps. When no internal dependencies
// exist, no hook is installed and nil is returned.
func InjectCoordination(cfg *domain.BundlerConfig, deps []domain.DependencyNode, targetName string) []domain.DependencyNode {
	internal := domain.InternalDependencies(deps)
	if len(internal) == 0 {
		return nil
	}

	cfg.Plugins = append(cfg.Plugins, domain.PipelinePlugin{
		Name:    CoordinationPluginName,
		Command: CommandFor(targetName, internal),
	})
	return internal
}

// LoadOverlay parses the bundler config overlay at path.
func LoadOverlay(path string) (*domain.BundlerConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path validated against the workspace beforehand
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrFileNotFound, err), "path", path)
	}

	var overlay domain.BundlerConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrOverlayParseFailed, err), "path", path)
	}
	return &overlay, nil
}

// ValidateFile eagerly checks that a configured path exists, resolving it
// against root when relative. The returned path is absolute. A configured
// but missing file is fatal before any delegation happens.
func ValidateFile(root, path string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", zerr.With(errors.Join(domain.ErrFileNotFound, err), "path", path)
	}
	return abs, nil
}
