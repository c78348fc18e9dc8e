// Package domain holds the core types for workspace target resolution.
package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Options is a flat mapping of option name to value. Values are opaque to
// this layer; layering replaces whole values key by key, nested objects
// included.
type Options map[string]any

// Clone returns a shallow copy of the options.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// String returns the value for key as a string, or "" if the key is absent
// or not a string.
func (o Options) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Bool returns the value for key as a bool plus whether the key held one.
func (o Options) Bool(key string) (bool, bool) {
	b, ok := o[key].(bool)
	return b, ok
}

// TargetDefinition describes a runnable target on a project: the executor
// responsible for it, its base options, and named configuration overlays.
type TargetDefinition struct {
	Executor             string             `json:"executor"`
	Options              Options            `json:"options"`
	Configurations       map[string]Options `json:"configurations"`
	DefaultConfiguration string             `json:"defaultConfiguration"`
}

// ProjectConfiguration is a single project in the workspace graph.
type ProjectConfiguration struct {
	Name       string                       `json:"name"`
	Root       string                       `json:"root"`
	SourceRoot string                       `json:"sourceRoot"`
	Targets    map[string]*TargetDefinition `json:"targets"`
}

// DependencyNode is one edge target in the dependency closure of a project.
// External nodes live outside the workspace and are never rebuilt.
type DependencyNode struct {
	Name     string
	External bool
}

// ExternalNodePrefix marks dependency edges that point outside the workspace.
const ExternalNodePrefix = "npm:"

// WorkspaceGraph is a read-only snapshot of all projects and their dependency
// edges. It is supplied by the graph cache and treated as immutable for the
// duration of one resolution.
type WorkspaceGraph struct {
	Projects map[string]*ProjectConfiguration

	// Edges maps project name to its direct dependency names. External
	// dependencies carry the ExternalNodePrefix.
	Edges map[string][]string
}

// Project looks up a project by name.
func (g *WorkspaceGraph) Project(name string) (*ProjectConfiguration, error) {
	p, ok := g.Projects[name]
	if !ok {
		return nil, zerr.With(ErrProjectNotFound, "project", name)
	}
	return p, nil
}

// Dependencies returns the transitive dependency closure of the named
// project, sorted by name for deterministic output. External edges terminate
// the walk: an external package's own dependencies are not part of the
// workspace.
func (g *WorkspaceGraph) Dependencies(project string) []DependencyNode {
	seen := map[string]bool{project: true}
	var nodes []DependencyNode

	var walk func(name string)
	walk = func(name string) {
		for _, edge := range g.Edges[name] {
			if seen[edge] {
				continue
			}
			seen[edge] = true

			if external, ok := strings.CutPrefix(edge, ExternalNodePrefix); ok {
				nodes = append(nodes, DependencyNode{Name: external, External: true})
				continue
			}
			nodes = append(nodes, DependencyNode{Name: edge})
			walk(edge)
		}
	}
	walk(project)

	slices.SortFunc(nodes, func(a, b DependencyNode) int {
		return strings.Compare(a.Name, b.Name)
	})
	return nodes
}

// InternalDependencies filters nodes down to the in-workspace subset.
func InternalDependencies(nodes []DependencyNode) []DependencyNode {
	var internal []DependencyNode
	for _, n := range nodes {
		if !n.External {
			internal = append(internal, n)
		}
	}
	return internal
}

// TempCompilerConfig is a session-scoped compiler configuration generated for
// source builds. It is regenerated on every invocation and never persisted
// beyond the session.
type TempCompilerConfig struct {
	Path         string
	Dependencies []DependencyNode
}
