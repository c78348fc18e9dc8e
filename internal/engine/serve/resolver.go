// Package serve holds the serve-time resolution pipeline: target reference
// resolution, dependency mode selection, and coordination hook injection.
package serve

import (
	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveTarget resolves a parsed target reference against the workspace
// graph, returning the owning project and the target definition.
func ResolveTarget(graph *domain.WorkspaceGraph, ref domain.TargetRef) (*domain.ProjectConfiguration, *domain.TargetDefinition, error) {
	project, err := graph.Project(ref.Project)
	if err != nil {
		return nil, nil, err
	}

	def, ok := project.Targets[ref.Target]
	if !ok {
		notFound := zerr.With(domain.ErrTargetNotFound, "project", ref.Project)
		return nil, nil, zerr.With(notFound, "target", ref.Target)
	}
	return project, def, nil
}
