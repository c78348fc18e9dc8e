package engine

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
)

const (
	// FastBuildExecutor is the esbuild-backed browser executor identifier.
	FastBuildExecutor = "@angular-devkit/build-angular:browser-esbuild"

	// forceEsbuildMinVersion is the first engine version that understands
	// the forceEsbuild flag.
	forceEsbuildMinVersion = "v16.1.0"

	// legacyTargetKeyMaxMajor is the last major version that expects the
	// browserTarget key instead of buildTarget.
	legacyTargetKeyMaxMajor = 17

	// suppressedEsbuildWarning is the benign warning the engine emits when
	// forceEsbuild is set. It is swallowed; every other warning passes
	// through unmodified.
	suppressedEsbuildWarning = "Forcing the use of the esbuild-based build system with third-party configurations may cause unexpected behavior"
)

// adaptationRule rewrites delegate options for a matching engine version and
// executor. Rules are independent; more than one may apply to the same
// invocation.
type adaptationRule struct {
	name    string
	applies func(version, executor string) bool
	apply   func(st *adaptation)
}

type adaptation struct {
	options domain.Options
	logger  ports.Logger
}

var adaptationRules = []adaptationRule{
	{
		name: "force-esbuild",
		applies: func(version, executor string) bool {
			return executor == FastBuildExecutor &&
				semver.Compare(canonicalVersion(version), forceEsbuildMinVersion) >= 0
		},
		apply: func(st *adaptation) {
			st.options["forceEsbuild"] = true
			st.logger = SuppressWarning(st.logger, suppressedEsbuildWarning)
		},
	},
	{
		name: "legacy-browser-target",
		applies: func(version, _ string) bool {
			major, ok := majorVersion(version)
			return ok && major <= legacyTargetKeyMaxMajor
		},
		apply: func(st *adaptation) {
			if v, ok := st.options["buildTarget"]; ok {
				st.options["browserTarget"] = v
				delete(st.options, "buildTarget")
			}
		},
	},
}

// Adapt applies the version-gated adaptation rules to options. It returns an
// adapted copy of options together with the logger to hand the delegate,
// which may have a filtered warning channel. The input options are not
// modified.
func Adapt(options domain.Options, executor string, info ports.EngineInfo, logger ports.Logger) (domain.Options, ports.Logger) {
	st := &adaptation{
		options: options.Clone(),
		logger:  logger,
	}
	for _, rule := range adaptationRules {
		if rule.applies(info.Version, executor) {
			rule.apply(st)
		}
	}
	return st.options, st.logger
}

// canonicalVersion prefixes a bare engine version with "v" so that the
// semver package accepts it.
func canonicalVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// majorVersion extracts the numeric major version, reporting false for
// versions semver cannot parse.
func majorVersion(version string) (int, bool) {
	m := semver.Major(canonicalVersion(version))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(m, "v"))
	if err != nil {
		return 0, false
	}
	return n, true
}
