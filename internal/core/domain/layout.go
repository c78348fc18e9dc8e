package domain

import "path/filepath"

const (
	// WorkspaceConfigFileName is the name of the workspace root configuration file.
	WorkspaceConfigFileName = "nx.json"

	// LegacyMarkerFileName marks a foreign monorepo that has not opted into
	// the workspace configuration file. Its presence (without nx.json) selects
	// the legacy cache location under the package manager's cache folder.
	LegacyMarkerFileName = "lerna.json"

	// ProjectGraphFileName is the name of the cached project graph snapshot.
	ProjectGraphFileName = "project-graph.json"

	// WorkspaceDirName is the name of the internal workspace directory.
	WorkspaceDirName = ".nx"

	// CacheDirName is the name of the cache directory inside WorkspaceDirName.
	CacheDirName = "cache"

	// TmpDirName is the name of the directory for session-scoped artifacts.
	TmpDirName = "tmp"

	// EnvCacheDirectory overrides the workspace cache directory.
	EnvCacheDirectory = "NX_CACHE_DIRECTORY"

	// EnvProjectGraphCacheDirectory overrides the project graph cache directory.
	EnvProjectGraphCacheDirectory = "NX_PROJECT_GRAPH_CACHE_DIRECTORY"

	// EnvCompilerConfigPath publishes the effective compiler configuration path
	// for downstream consumers. Set once at the start of orchestration.
	EnvCompilerConfigPath = "NX_TSCONFIG_PATH"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the default cache directory relative to the
// workspace root.
func DefaultCachePath(root string) string {
	return filepath.Join(root, WorkspaceDirName, CacheDirName)
}

// LegacyCachePath returns the cache directory used for workspaces that carry
// the legacy marker file instead of a workspace configuration file.
func LegacyCachePath(root string) string {
	return filepath.Join(root, "node_modules", ".cache", "nx")
}
