package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"events-cleanup-service/internal/hierarchy/core/domain"
	"events-cleanup-service/internal/hierarchy/core/ports"

	"golang.org/x/sync/errgroup"
)

var ErrNodeNotFound = errors.New("hierarchy node not found")

// One goroutine per relation.
const maxConcurrentFetches = 4

type GetHierarchyUseCase struct {
	reader ports.HierarchyReaderPort
	logger *slog.Logger
}

func NewGetHierarchyUseCase(reader ports.HierarchyReaderPort, logger *slog.Logger) *GetHierarchyUseCase {
	return &GetHierarchyUseCase{reader: reader, logger: resolveLogger(logger)}
}

// Execute loads all relations and assembles a fresh tree.
func (uc *GetHierarchyUseCase) Execute(ctx context.Context) (*domain.Tree, error) {
	var (
		workspaces    []domain.Workspace
		organizations []domain.Organization
		projects      []domain.Project
		environments  []domain.Environment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	g.Go(func() (err error) {
		workspaces, err = uc.reader.ListWorkspaces(gctx)
		return wrapFetch("workspaces", err)
	})
	g.Go(func() (err error) {
		organizations, err = uc.reader.ListOrganizations(gctx)
		return wrapFetch("organizations", err)
	})
	g.Go(func() (err error) {
		projects, err = uc.reader.ListProjects(gctx)
		return wrapFetch("projects", err)
	})
	g.Go(func() (err error) {
		environments, err = uc.reader.ListEnvironments(gctx)
		return wrapFetch("environments", err)
	})

	if err := g.Wait(); err != nil {
		uc.logger.ErrorContext(ctx, "hierarchy fetch failed", slog.Any("error", err))
		return nil, err
	}

	uc.logger.DebugContext(ctx, "hierarchy loaded",
		slog.Int("workspaces", len(workspaces)),
		slog.Int("organizations", len(organizations)),
		slog.Int("projects", len(projects)),
		slog.Int("environments", len(environments)))

	return domain.Assemble(workspaces, organizations, projects, environments), nil
}

// EnvironmentIDs returns every environment beneath the node, whatever its
// level.
func (uc *GetHierarchyUseCase) EnvironmentIDs(ctx context.Context, nodeID string) (domain.NodeEnvironments, error) {
	tree, err := uc.Execute(ctx)
	if err != nil {
		return domain.NodeEnvironments{}, err
	}

	envs, ok := tree.EnvIDsUnder(nodeID)
	if !ok {
		return domain.NodeEnvironments{}, fmt.Errorf("%w: %q", ErrNodeNotFound, nodeID)
	}
	return envs, nil
}

func wrapFetch(relation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("fetch %s: %w", relation, err)
}
