package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTargetRef is returned when a target reference string cannot be parsed.
	ErrInvalidTargetRef = zerr.New("invalid target reference, expected format: project:target[:configuration]")

	// ErrProjectNotFound is returned when a referenced project does not exist in the workspace graph.
	ErrProjectNotFound = zerr.New("project not found in workspace")

	// ErrTargetNotFound is returned when a referenced target does not exist on the project.
	ErrTargetNotFound = zerr.New("target not found on project")

	// ErrConfigurationNotFound is returned when a named configuration does not exist on the target.
	ErrConfigurationNotFound = zerr.New("configuration not found on target")

	// ErrMissingBuildTarget is returned when the serve target options do not name a build target.
	ErrMissingBuildTarget = zerr.New("serve target options do not declare a buildTarget")

	// ErrMissingCompilerConfig is returned when the effective build options carry no compiler configuration path.
	ErrMissingCompilerConfig = zerr.New("effective options carry no compiler configuration path")

	// ErrFileNotFound is returned when a configured file path does not exist on disk.
	ErrFileNotFound = zerr.New("configured file does not exist")

	// ErrSynthesisFailed is returned when the temporary compiler configuration cannot be generated.
	ErrSynthesisFailed = zerr.New("failed to synthesize compiler configuration")

	// ErrGraphCacheMissing is returned when no cached project graph snapshot exists.
	ErrGraphCacheMissing = zerr.New("project graph cache not found, run the graph builder first")

	// ErrGraphCacheStale is returned when the cached project graph no longer matches the workspace configuration.
	ErrGraphCacheStale = zerr.New("project graph cache is stale")

	// ErrGraphCacheCorrupt is returned when the cached project graph cannot be decoded.
	ErrGraphCacheCorrupt = zerr.New("project graph cache is corrupt")

	// ErrEngineNotInstalled is returned when the delegate build engine cannot be located in the workspace.
	ErrEngineNotInstalled = zerr.New("delegate build engine is not installed")

	// ErrEngineVersionUnknown is returned when the installed engine version cannot be determined.
	ErrEngineVersionUnknown = zerr.New("unable to determine delegate build engine version")

	// ErrEngineExited is returned when the delegate dev server terminates with a failure.
	ErrEngineExited = zerr.New("delegate dev server exited")

	// ErrOverlayParseFailed is returned when a bundler config overlay file cannot be parsed.
	ErrOverlayParseFailed = zerr.New("failed to parse bundler config overlay")

	// ErrCoordinationFailed is returned when the dependency rebuild command fails.
	ErrCoordinationFailed = zerr.New("dependency rebuild command failed")
)
