package graph_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/usher/internal/adapters/graph"
	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const snapshotTemplate = `{
  "version": "1",
  "configDigests": {"nx.json": %q},
  "nodes": {
    "web": {
      "root": "apps/web",
      "sourceRoot": "apps/web/src",
      "targets": {
        "build": {"executor": "@nx/webpack:webpack", "options": {"tsConfig": "apps/web/tsconfig.json"}}
      }
    },
    "ui": {"root": "libs/ui", "sourceRoot": "libs/ui/src"}
  },
  "dependencies": {
    "web": [{"target": "ui"}, {"target": "npm:rxjs"}]
  }
}`

func writeSnapshot(t *testing.T, root, cacheDir, workspaceConfig string) {
	t.Helper()

	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.WorkspaceConfigFileName),
		[]byte(workspaceConfig), domain.FilePerm))

	snapshot := fmt.Sprintf(snapshotTemplate, graph.Digest([]byte(workspaceConfig)))
	require.NoError(t, os.MkdirAll(cacheDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(
		filepath.Join(cacheDir, domain.ProjectGraphFileName),
		[]byte(snapshot), domain.FilePerm))
}

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestReader_Read(t *testing.T) {
	root := t.TempDir()
	cacheDir := filepath.Join(root, ".nx", "cache")
	writeSnapshot(t, root, cacheDir, `{"npmScope": "acme"}`)

	r := graph.NewReader(cacheDir, newLogger(t))
	g, err := r.Read(context.Background(), root)
	require.NoError(t, err)

	web, err := g.Project("web")
	require.NoError(t, err)
	assert.Equal(t, "web", web.Name, "node name is filled from the map key")
	assert.Equal(t, "apps/web", web.Root)
	require.Contains(t, web.Targets, "build")
	assert.Equal(t, "@nx/webpack:webpack", web.Targets["build"].Executor)

	deps := g.Dependencies("web")
	assert.Equal(t, []domain.DependencyNode{
		{Name: "rxjs", External: true},
		{Name: "ui"},
	}, deps)
}

func TestReader_Read_Missing(t *testing.T) {
	root := t.TempDir()
	r := graph.NewReader(filepath.Join(root, "nowhere"), newLogger(t))

	_, err := r.Read(context.Background(), root)
	require.ErrorIs(t, err, domain.ErrGraphCacheMissing)
}

func TestReader_Read_Corrupt(t *testing.T) {
	root := t.TempDir()
	cacheDir := filepath.Join(root, ".nx", "cache")
	require.NoError(t, os.MkdirAll(cacheDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(
		filepath.Join(cacheDir, domain.ProjectGraphFileName),
		[]byte("{broken"), domain.FilePerm))

	r := graph.NewReader(cacheDir, newLogger(t))
	_, err := r.Read(context.Background(), root)
	require.ErrorIs(t, err, domain.ErrGraphCacheCorrupt)
}

func TestReader_Read_StaleDigest(t *testing.T) {
	root := t.TempDir()
	cacheDir := filepath.Join(root, ".nx", "cache")
	writeSnapshot(t, root, cacheDir, `{"npmScope": "acme"}`)

	// Change the workspace configuration after the snapshot was taken.
	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.WorkspaceConfigFileName),
		[]byte(`{"npmScope": "changed"}`), domain.FilePerm))

	r := graph.NewReader(cacheDir, newLogger(t))
	_, err := r.Read(context.Background(), root)
	require.ErrorIs(t, err, domain.ErrGraphCacheStale)
}

func TestReader_Read_StaleMissingConfigFile(t *testing.T) {
	root := t.TempDir()
	cacheDir := filepath.Join(root, ".nx", "cache")
	writeSnapshot(t, root, cacheDir, `{}`)
	require.NoError(t, os.Remove(filepath.Join(root, domain.WorkspaceConfigFileName)))

	r := graph.NewReader(cacheDir, newLogger(t))
	_, err := r.Read(context.Background(), root)
	require.ErrorIs(t, err, domain.ErrGraphCacheStale)
}
