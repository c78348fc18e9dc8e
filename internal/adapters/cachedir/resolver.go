// Package cachedir resolves the workspace cache directories.
package cachedir

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/usher/internal/core/domain"
)

// Resolver is the cache directory resolution service. Both directories are
// resolved once at construction and are immutable afterwards; the
// computation itself is pure for a fixed environment and filesystem state,
// so concurrent construction races are benign.
type Resolver struct {
	root          string
	cacheDir      string
	graphCacheDir string
}

// NewResolver resolves both cache directories for the workspace rooted at
// root.
func NewResolver(root string) *Resolver {
	return &Resolver{
		root:          root,
		cacheDir:      ResolveCacheDirectory(root),
		graphCacheDir: ResolveProjectGraphCacheDirectory(root),
	}
}

// Root returns the workspace root the resolver was constructed for.
func (r *Resolver) Root() string {
	return r.root
}

// CacheDirectory returns the workspace cache directory.
func (r *Resolver) CacheDirectory() string {
	return r.cacheDir
}

// ProjectGraphCacheDirectory returns the project graph cache directory.
func (r *Resolver) ProjectGraphCacheDirectory() string {
	return r.graphCacheDir
}

// ResolveCacheDirectory computes the workspace cache directory. Precedence,
// highest first: the environment override, a cacheDirectory property in the
// workspace configuration file (including its legacy nested form), then the
// default location. Configuration read or parse failures are treated as
// "property absent" and fall through.
func ResolveCacheDirectory(root string) string {
	if env := os.Getenv(domain.EnvCacheDirectory); env != "" {
		return absolutePath(root, env)
	}
	if declared := declaredCacheDirectory(root); declared != "" {
		return absolutePath(root, declared)
	}
	return defaultCacheDirectory(root)
}

// ResolveProjectGraphCacheDirectory computes the project graph cache
// directory. It shares the default computation with ResolveCacheDirectory
// but honors its own environment override and performs no configuration-file
// lookup.
func ResolveProjectGraphCacheDirectory(root string) string {
	if env := os.Getenv(domain.EnvProjectGraphCacheDirectory); env != "" {
		return absolutePath(root, env)
	}
	return defaultCacheDirectory(root)
}

// FindRoot walks up from cwd looking for the workspace configuration file or
// the legacy marker file. When neither exists on any ancestor, cwd itself is
// returned.
func FindRoot(cwd string) string {
	dir := cwd
	for {
		if fileExists(filepath.Join(dir, domain.WorkspaceConfigFileName)) ||
			fileExists(filepath.Join(dir, domain.LegacyMarkerFileName)) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// workspaceConfig mirrors the slice of the workspace configuration file this
// package cares about.
type workspaceConfig struct {
	CacheDirectory     string `json:"cacheDirectory"`
	TasksRunnerOptions map[string]struct {
		Options struct {
			CacheDirectory string `json:"cacheDirectory"`
		} `json:"options"`
	} `json:"tasksRunnerOptions"`
}

func declaredCacheDirectory(root string) string {
	raw, err := os.ReadFile(filepath.Join(root, domain.WorkspaceConfigFileName))
	if err != nil {
		return ""
	}

	var cfg workspaceConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return ""
	}

	if cfg.CacheDirectory != "" {
		return cfg.CacheDirectory
	}
	return cfg.TasksRunnerOptions["default"].Options.CacheDirectory
}

func defaultCacheDirectory(root string) string {
	if fileExists(filepath.Join(root, domain.LegacyMarkerFileName)) &&
		!fileExists(filepath.Join(root, domain.WorkspaceConfigFileName)) {
		return domain.LegacyCachePath(root)
	}
	return domain.DefaultCachePath(root)
}

func absolutePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
