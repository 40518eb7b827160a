package ports

import (
	"context"

	"events-cleanup-service/internal/hierarchy/core/domain"
)

// HierarchyReaderPort loads the four flat relations. The calls are
// independent and may run concurrently.
type HierarchyReaderPort interface {
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListEnvironments(ctx context.Context) ([]domain.Environment, error)
}
