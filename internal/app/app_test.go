package app_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/usher/internal/adapters/cachedir"
	"go.trai.ch/usher/internal/app"
	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
	"go.trai.ch/usher/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app         *app.App
	root        string
	graphReader *mocks.MockGraphReader
	synthesizer *mocks.MockCompilerConfigSynthesizer
	prober      *mocks.MockEngineProber
	engine      *mocks.MockDelegateEngine
	runner      *mocks.MockCoordinationRunner
	logger      *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	f := &fixture{
		root:        root,
		graphReader: mocks.NewMockGraphReader(ctrl),
		synthesizer: mocks.NewMockCompilerConfigSynthesizer(ctrl),
		prober:      mocks.NewMockEngineProber(ctrl),
		engine:      mocks.NewMockDelegateEngine(ctrl),
		runner:      mocks.NewMockCoordinationRunner(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.app = app.New(
		cachedir.NewResolver(root),
		f.graphReader,
		f.synthesizer,
		f.prober,
		f.engine,
		f.runner,
		f.logger,
	)
	return f
}

func serveGraph() *domain.WorkspaceGraph {
	return &domain.WorkspaceGraph{
		Projects: map[string]*domain.ProjectConfiguration{
			"web": {
				Name: "web",
				Root: "apps/web",
				Targets: map[string]*domain.TargetDefinition{
					"serve": {
						Executor: "@angular-devkit/build-angular:dev-server",
						Options:  domain.Options{"buildTarget": "web:build"},
						Configurations: map[string]domain.Options{
							"production": {"buildLibsFromSource": false},
						},
					},
					"build": {
						Executor: "@angular-devkit/build-angular:browser",
						Options:  domain.Options{"tsConfig": "apps/web/tsconfig.json"},
					},
				},
			},
			"ui": {
				Name:       "ui",
				Root:       "libs/ui",
				SourceRoot: "libs/ui/src",
			},
		},
		Edges: map[string][]string{
			"web": {"ui", "npm:rxjs"},
		},
	}
}

func TestApp_Serve_SourceBuild(t *testing.T) {
	f := newFixture(t)
	t.Setenv(domain.EnvCompilerConfigPath, "")

	graph := serveGraph()
	generated := "/ws/.nx/cache/tmp/build/tsconfig.generated.json"

	f.graphReader.EXPECT().Read(gomock.Any(), f.root).Return(graph, nil)
	f.synthesizer.EXPECT().
		Synthesize(gomock.Any(), "apps/web/tsconfig.json", "web", "build", graph).
		Return(&domain.TempCompilerConfig{
			Path:         generated,
			Dependencies: []domain.DependencyNode{{Name: "ui"}, {Name: "rxjs", External: true}},
		}, nil)
	f.prober.EXPECT().Probe(f.root).Return(ports.EngineInfo{Version: "18.2.0"}, nil)

	wantCommand := "npx nx run-many --target=build --projects=ui"
	f.runner.EXPECT().
		Watch(gomock.Any(), []string{"libs/ui/src"}, wantCommand).
		DoAndReturn(func(ctx context.Context, _ []string, _ string) error {
			<-ctx.Done()
			return ctx.Err()
		})

	var captured *ports.ServeRequest
	f.engine.EXPECT().
		Serve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *ports.ServeRequest) error {
			captured = req
			return nil
		})

	err := f.app.Serve(context.Background(), app.ServeOptions{TargetRef: "web:serve"})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "web:build", captured.Options["buildTarget"], "major 18 keeps the buildTarget key")
	assert.NotContains(t, captured.Options, "forceEsbuild")
	assert.Equal(t, generated, os.Getenv(domain.EnvCompilerConfigPath))

	cfg, err := captured.BundlerConfig()
	require.NoError(t, err)
	assert.Equal(t, generated, cfg.Settings["tsConfig"], "rewrite must reach the bundler config")
	require.Len(t, cfg.Plugins, 1)
	assert.Equal(t, wantCommand, cfg.Plugins[0].Command)

	// The factory is re-entrant: a second call yields a fresh config.
	again, err := captured.BundlerConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestApp_Serve_ArtifactConsumption(t *testing.T) {
	f := newFixture(t)
	t.Setenv(domain.EnvCompilerConfigPath, "")

	f.graphReader.EXPECT().Read(gomock.Any(), f.root).Return(serveGraph(), nil)
	f.prober.EXPECT().Probe(f.root).Return(ports.EngineInfo{Version: "18.2.0"}, nil)

	var captured *ports.ServeRequest
	f.engine.EXPECT().
		Serve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *ports.ServeRequest) error {
			captured = req
			return nil
		})

	err := f.app.Serve(context.Background(), app.ServeOptions{
		TargetRef:     "web:serve",
		Configuration: "production",
	})
	require.NoError(t, err)

	// No synthesis, no coordination; the declared config path is published.
	assert.Equal(t, "apps/web/tsconfig.json", os.Getenv(domain.EnvCompilerConfigPath))

	cfg, err := captured.BundlerConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.Plugins)
	assert.Equal(t, "apps/web/tsconfig.json", cfg.Settings["tsConfig"])
}

func TestApp_Serve_ExplicitChoiceBeatsConfiguration(t *testing.T) {
	f := newFixture(t)
	t.Setenv(domain.EnvCompilerConfigPath, "")

	graph := serveGraph()
	buildFromSource := true

	f.graphReader.EXPECT().Read(gomock.Any(), f.root).Return(graph, nil)
	f.synthesizer.EXPECT().
		Synthesize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TempCompilerConfig{Path: "/tmp/generated.json"}, nil)
	f.prober.EXPECT().Probe(f.root).Return(ports.EngineInfo{Version: "18.2.0"}, nil)
	f.engine.EXPECT().Serve(gomock.Any(), gomock.Any()).Return(nil)

	err := f.app.Serve(context.Background(), app.ServeOptions{
		TargetRef:           "web:serve",
		Configuration:       "production",
		BuildLibsFromSource: &buildFromSource,
	})
	require.NoError(t, err)
}

func TestApp_Serve_MissingTransformFailsBeforeDelegation(t *testing.T) {
	f := newFixture(t)

	graph := serveGraph()
	serveDef := graph.Projects["web"].Targets["serve"]
	serveDef.Options["indexHtmlTransformer"] = "nonexistent.js"
	serveDef.Options["buildLibsFromSource"] = false

	f.graphReader.EXPECT().Read(gomock.Any(), f.root).Return(graph, nil)

	// No probe, no serve: the prober and engine mocks would fail on any call.
	err := f.app.Serve(context.Background(), app.ServeOptions{TargetRef: "web:serve"})
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestApp_Serve_MissingBuildTarget(t *testing.T) {
	f := newFixture(t)

	graph := serveGraph()
	delete(graph.Projects["web"].Targets["serve"].Options, "buildTarget")

	f.graphReader.EXPECT().Read(gomock.Any(), f.root).Return(graph, nil)

	err := f.app.Serve(context.Background(), app.ServeOptions{TargetRef: "web:serve"})
	assert.ErrorIs(t, err, domain.ErrMissingBuildTarget)
}

func TestApp_Serve_UnknownConfiguration(t *testing.T) {
	f := newFixture(t)

	f.graphReader.EXPECT().Read(gomock.Any(), f.root).Return(serveGraph(), nil)

	err := f.app.Serve(context.Background(), app.ServeOptions{
		TargetRef: "web:serve:staging",
	})
	assert.ErrorIs(t, err, domain.ErrConfigurationNotFound)
}

func TestApp_Serve_InvalidRef(t *testing.T) {
	f := newFixture(t)

	err := f.app.Serve(context.Background(), app.ServeOptions{TargetRef: "serve"})
	assert.ErrorIs(t, err, domain.ErrInvalidTargetRef)
}

func TestApp_CacheDirs(t *testing.T) {
	f := newFixture(t)

	cacheDir, graphCacheDir := f.app.CacheDirs()
	assert.NotEmpty(t, cacheDir)
	assert.NotEmpty(t, graphCacheDir)
}
