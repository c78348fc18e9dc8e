package serve_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/engine/serve"
)

func TestIsBundlerExecutor(t *testing.T) {
	assert.True(t, serve.IsBundlerExecutor("@nx/webpack:webpack"))
	assert.True(t, serve.IsBundlerExecutor("@nx/angular:webpack-browser"))
	assert.True(t, serve.IsBundlerExecutor("@angular-devkit/build-angular:browser"))
	assert.False(t, serve.IsBundlerExecutor("@angular-devkit/build-angular:browser-esbuild"))
	assert.False(t, serve.IsBundlerExecutor("@nx/vite:build"))
}

func TestInjectCoordination(t *testing.T) {
	cfg := &domain.BundlerConfig{}
	deps := []domain.DependencyNode{
		{Name: "a"},
		{Name: "b", External: true},
		{Name: "c"},
	}

	internal := serve.InjectCoordination(cfg, deps, "serve")

	require.Len(t, internal, 2)
	require.Len(t, cfg.Plugins, 1)
	assert.Equal(t, serve.CoordinationPluginName, cfg.Plugins[0].Name)
	assert.Equal(t, "npx nx run-many --target=serve --projects=a,c", cfg.Plugins[0].Command)
}

func TestInjectCoordination_AllExternal(t *testing.T) {
	cfg := &domain.BundlerConfig{}
	deps := []domain.DependencyNode{
		{Name: "rxjs", External: true},
		{Name: "zone.js", External: true},
	}

	internal := serve.InjectCoordination(cfg, deps, "serve")

	assert.Nil(t, internal)
	assert.Empty(t, cfg.Plugins, "no hook may be installed for an empty internal set")
}

func TestInjectCoordination_NoDependencies(t *testing.T) {
	cfg := &domain.BundlerConfig{}
	assert.Nil(t, serve.InjectCoordination(cfg, nil, "serve"))
	assert.Empty(t, cfg.Plugins)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webpack.overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
settings:
  devtool: source-map
plugins:
  - name: define
`), 0o600))

	overlay, err := serve.LoadOverlay(path)
	require.NoError(t, err)
	assert.Equal(t, "source-map", overlay.Settings.String("devtool"))
	require.Len(t, overlay.Plugins, 1)
	assert.Equal(t, "define", overlay.Plugins[0].Name)
}

func TestLoadOverlay_Missing(t *testing.T) {
	_, err := serve.LoadOverlay(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestLoadOverlay_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings: [unclosed"), 0o600))

	_, err := serve.LoadOverlay(path)
	assert.ErrorIs(t, err, domain.ErrOverlayParseFailed)
}

func TestValidateFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "transform.js"), []byte("module.exports = x => x\n"), 0o600))

	abs, err := serve.ValidateFile(root, "transform.js")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "transform.js"), abs)
}

func TestValidateFile_Missing(t *testing.T) {
	_, err := serve.ValidateFile(t.TempDir(), "nonexistent.js")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}
