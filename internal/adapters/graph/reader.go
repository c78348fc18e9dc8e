// Package graph reads the externally built project graph cache.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GraphReader = (*Reader)(nil)

// Reader loads the cached project graph snapshot from the project graph
// cache directory. The snapshot is produced by the external graph builder;
// this adapter only validates and decodes it.
type Reader struct {
	cacheDir string
	logger   ports.Logger
}

// NewReader creates a Reader that looks for snapshots in cacheDir.
func NewReader(cacheDir string, logger ports.Logger) *Reader {
	return &Reader{cacheDir: cacheDir, logger: logger}
}

// envelope is the on-disk shape of the snapshot. ConfigDigests holds xxhash
// digests of the workspace configuration files the graph was built from,
// keyed by path relative to the workspace root.
type envelope struct {
	Version       string                                   `json:"version"`
	ConfigDigests map[string]string                        `json:"configDigests"`
	Nodes         map[string]*domain.ProjectConfiguration  `json:"nodes"`
	Dependencies  map[string][]dependencyEdge              `json:"dependencies"`
}

type dependencyEdge struct {
	Target string `json:"target"`
}

// Read loads the snapshot and verifies it still matches the workspace
// configuration files it was built from.
func (r *Reader) Read(_ context.Context, root string) (*domain.WorkspaceGraph, error) {
	path := filepath.Join(r.cacheDir, domain.ProjectGraphFileName)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrGraphCacheMissing, "path", path)
		}
		return nil, zerr.Wrap(err, "failed to read project graph cache")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, zerr.With(domain.ErrGraphCacheCorrupt, "path", path)
	}

	if err := r.validateDigests(root, env.ConfigDigests); err != nil {
		return nil, err
	}

	g := &domain.WorkspaceGraph{
		Projects: make(map[string]*domain.ProjectConfiguration, len(env.Nodes)),
		Edges:    make(map[string][]string, len(env.Dependencies)),
	}
	for name, project := range env.Nodes {
		if project.Name == "" {
			project.Name = name
		}
		g.Projects[name] = project
	}
	for source, edges := range env.Dependencies {
		targets := make([]string, len(edges))
		for i, e := range edges {
			targets[i] = e.Target
		}
		g.Edges[source] = targets
	}

	r.logger.Info(fmt.Sprintf("loaded project graph with %d projects", len(g.Projects)))
	return g, nil
}

// validateDigests compares the recorded configuration file digests against
// the files on disk. A missing or changed file means the snapshot no longer
// describes this workspace.
func (r *Reader) validateDigests(root string, digests map[string]string) error {
	for rel, want := range digests {
		raw, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return zerr.With(domain.ErrGraphCacheStale, "file", rel)
		}
		if got := Digest(raw); got != want {
			return zerr.With(domain.ErrGraphCacheStale, "file", rel)
		}
	}
	return nil
}

// Digest returns the content digest recorded in snapshot envelopes.
func Digest(content []byte) string {
	return strconv.FormatUint(xxhash.Sum64(content), 16)
}
