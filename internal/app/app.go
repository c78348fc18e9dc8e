// Package app implements the application layer for usher.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/usher/internal/adapters/cachedir"
	"go.trai.ch/usher/internal/adapters/engine"
	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
	"go.trai.ch/usher/internal/engine/serve"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	paths       *cachedir.Resolver
	graphReader ports.GraphReader
	synthesizer ports.CompilerConfigSynthesizer
	prober      ports.EngineProber
	engine      ports.DelegateEngine
	runner      ports.CoordinationRunner
	logger      ports.Logger
}

// New creates a new App instance.
func New(
	paths *cachedir.Resolver,
	graphReader ports.GraphReader,
	synthesizer ports.CompilerConfigSynthesizer,
	prober ports.EngineProber,
	delegate ports.DelegateEngine,
	runner ports.CoordinationRunner,
	log ports.Logger,
) *App {
	return &App{
		paths:       paths,
		graphReader: graphReader,
		synthesizer: synthesizer,
		prober:      prober,
		engine:      delegate,
		runner:      runner,
		logger:      log,
	}
}

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	// TargetRef is the serve target reference, project:target[:configuration].
	TargetRef string

	// Configuration overrides the reference's configuration segment.
	Configuration string

	// BuildLibsFromSource is the explicit user choice for the dependency
	// mode. Nil means not specified.
	BuildLibsFromSource *bool

	// Overrides are explicit option overrides. They take precedence over
	// both the configuration overlay and the target's base options.
	Overrides domain.Options
}

// Serve resolves the serve target and delegates to the external dev server.
// It blocks for the lifetime of the serve session.
//
//nolint:cyclop // orchestration function
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	tracer := otel.Tracer("usher")

	ctx, span := tracer.Start(ctx, "serve")
	defer span.End()

	plan, err := a.resolveServe(ctx, tracer, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	info, err := a.prober.Probe(a.paths.Root())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	a.logger.Info(fmt.Sprintf("delegating to %s %s", engine.EnginePackageName, info.Version))

	adapted, delegateLogger := engine.Adapt(plan.serveOptions, plan.buildExecutor, info, a.logger)

	req := &ports.ServeRequest{
		Engine:             info,
		Options:            adapted,
		BundlerConfig:      plan.bundlerConfig,
		IndexTransformPath: plan.indexTransformPath,
		Logger:             delegateLogger,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The watcher has no reason to outlive the serve session.
		defer cancel()
		return a.engine.Serve(ctx, req)
	})
	if len(plan.watchRoots) > 0 {
		g.Go(func() error {
			err := a.runner.Watch(ctx, plan.watchRoots, plan.rebuildCommand)
			if err != nil && ctx.Err() != nil {
				return nil
			}
			return err
		})
	}
	return g.Wait()
}

// servePlan is everything resolved before control passes to the delegate.
type servePlan struct {
	serveOptions       domain.Options
	buildExecutor      string
	bundlerConfig      func() (*domain.BundlerConfig, error)
	indexTransformPath string
	watchRoots         []string
	rebuildCommand     string
}

//nolint:cyclop,funlen // sequences the resolution pipeline step by step
func (a *App) resolveServe(ctx context.Context, tracer trace.Tracer, opts ServeOptions) (*servePlan, error) {
	ctx, span := tracer.Start(ctx, "resolve-target")
	defer span.End()

	ref, err := domain.ParseTargetRef(opts.TargetRef, "")
	if err != nil {
		return nil, err
	}
	if opts.Configuration != "" {
		ref.Configuration = opts.Configuration
	}

	graph, err := a.graphReader.Read(ctx, a.paths.Root())
	if err != nil {
		return nil, err
	}

	serveProject, serveDef, err := serve.ResolveTarget(graph, ref)
	if err != nil {
		return nil, err
	}
	serveOptions, err := serveDef.Layer(ref.Configuration, opts.Overrides)
	if err != nil {
		return nil, err
	}

	buildTargetRef := serveOptions.String(serve.BuildTargetOption)
	if buildTargetRef == "" {
		return nil, zerr.With(domain.ErrMissingBuildTarget, "target", ref.String())
	}
	buildRef, err := domain.ParseTargetRef(buildTargetRef, serveProject.Name)
	if err != nil {
		return nil, err
	}
	_, buildDef, err := serve.ResolveTarget(graph, buildRef)
	if err != nil {
		return nil, err
	}
	buildOptions, err := buildDef.Layer(buildRef.Configuration, nil)
	if err != nil {
		return nil, err
	}

	mode := serve.SelectMode(serveOptions, opts.BuildLibsFromSource)
	a.logger.Info(fmt.Sprintf("serving %s in %s mode", ref.String(), mode))

	var deps []domain.DependencyNode
	if mode == serve.SourceBuild {
		ctx, synthSpan := tracer.Start(ctx, "synthesize-compiler-config")
		deps, err = serve.PrepareSourceBuild(ctx, a.synthesizer, buildOptions, buildRef.Project, buildRef.Target, graph)
		synthSpan.End()
		if err != nil {
			return nil, err
		}
	}

	// Publish the effective compiler config path for downstream consumers.
	if configPath := buildOptions.String(serve.CompilerConfigOption); configPath != "" {
		if err := os.Setenv(domain.EnvCompilerConfigPath, configPath); err != nil {
			return nil, zerr.Wrap(err, "failed to publish compiler config path")
		}
	}

	plan := &servePlan{
		serveOptions:  serveOptions,
		buildExecutor: buildDef.Executor,
	}

	// Configured-but-missing paths are fatal before anything is delegated.
	loadOverlay := func() (*domain.BundlerConfig, error) { return nil, nil }
	if overlayPath := buildOptions.String(serve.BundlerOverlayOption); overlayPath != "" {
		abs, err := serve.ValidateFile(a.paths.Root(), overlayPath)
		if err != nil {
			return nil, err
		}
		loadOverlay = sync.OnceValues(func() (*domain.BundlerConfig, error) {
			return serve.LoadOverlay(abs)
		})
	}
	if transformPath := serveOptions.String(serve.IndexTransformOption); transformPath != "" {
		abs, err := serve.ValidateFile(a.paths.Root(), transformPath)
		if err != nil {
			return nil, err
		}
		plan.indexTransformPath = abs
	}

	injectHook := mode == serve.SourceBuild && serve.IsBundlerExecutor(buildDef.Executor)

	// The delegate may call this on every rebuild; apart from the memoized
	// overlay load it only reads already-resolved state.
	plan.bundlerConfig = func() (*domain.BundlerConfig, error) {
		cfg := &domain.BundlerConfig{Settings: buildOptions.Clone()}
		if injectHook {
			serve.InjectCoordination(cfg, deps, buildRef.Target)
		}
		overlay, err := loadOverlay()
		if err != nil {
			return nil, err
		}
		cfg.MergeOverlay(overlay)
		return cfg, nil
	}

	if injectHook {
		if internal := domain.InternalDependencies(deps); len(internal) > 0 {
			plan.rebuildCommand = serve.CommandFor(buildRef.Target, internal)
			plan.watchRoots = sourceRoots(graph, internal)
		}
	}

	return plan, nil
}

// CacheDirs reports the resolved cache directories.
func (a *App) CacheDirs() (cacheDir, graphCacheDir string) {
	return a.paths.CacheDirectory(), a.paths.ProjectGraphCacheDirectory()
}

// sourceRoots maps internal dependencies to their source directories,
// falling back to the project root when no source root is declared.
func sourceRoots(graph *domain.WorkspaceGraph, internal []domain.DependencyNode) []string {
	roots := make([]string, 0, len(internal))
	for _, dep := range internal {
		project, err := graph.Project(dep.Name)
		if err != nil {
			continue
		}
		root := project.SourceRoot
		if root == "" {
			root = project.Root
		}
		if root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}
