package usecase_test

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"

	"events-cleanup-service/internal/hierarchy/core/domain"
	"events-cleanup-service/internal/hierarchy/core/usecase"
)

// fakeHierarchyReader serves fixed relations and records concurrency.
type fakeHierarchyReader struct {
	workspaces    []domain.Workspace
	organizations []domain.Organization
	projects      []domain.Project
	environments  []domain.Environment
	projectsErr   error

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	calls       atomic.Int32
}

func (f *fakeHierarchyReader) enter() func() {
	f.calls.Add(1)
	n := f.inFlight.Add(1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeHierarchyReader) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	defer f.enter()()
	return f.workspaces, nil
}

func (f *fakeHierarchyReader) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	defer f.enter()()
	return f.organizations, nil
}

func (f *fakeHierarchyReader) ListProjects(ctx context.Context) ([]domain.Project, error) {
	defer f.enter()()
	return f.projects, f.projectsErr
}

func (f *fakeHierarchyReader) ListEnvironments(ctx context.Context) ([]domain.Environment, error) {
	defer f.enter()()
	return f.environments, nil
}

func fixtureReader() *fakeHierarchyReader {
	return &fakeHierarchyReader{
		workspaces:    []domain.Workspace{{ID: "w1"}},
		organizations: []domain.Organization{{ID: "o1", WorkspaceID: "w1"}},
		projects:      []domain.Project{{ID: "p1", OrganizationID: "o1"}, {ID: "p2", OrganizationID: "o1"}},
		environments:  []domain.Environment{{ID: "e1", ProjectID: "p1"}, {ID: "e2", ProjectID: "p1"}},
	}
}

func TestGetHierarchy_Success(t *testing.T) {
	reader := fixtureReader()
	uc := usecase.NewGetHierarchyUseCase(reader, nil)

	tree, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reader.calls.Load() != 4 {
		t.Fatalf("expected 4 fetches, got %d", reader.calls.Load())
	}
	if reader.maxInFlight.Load() > 4 {
		t.Fatalf("expected at most 4 concurrent fetches, got %d", reader.maxInFlight.Load())
	}
	if len(tree.Workspaces) != 1 || len(tree.Workspaces[0].Organizations[0].Projects) != 2 {
		t.Fatalf("unexpected tree: %+v", tree)
	}
}

func TestGetHierarchy_FetchError(t *testing.T) {
	reader := fixtureReader()
	reader.projectsErr = errors.New("db failure")
	uc := usecase.NewGetHierarchyUseCase(reader, nil)

	tree, err := uc.Execute(context.Background())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, reader.projectsErr) {
		t.Fatalf("expected wrapped db failure, got %v", err)
	}
	if err.Error() != "fetch projects: db failure" {
		t.Fatalf("unexpected message: %v", err)
	}
	if tree != nil {
		t.Fatalf("expected nil tree on error")
	}
}

func TestGetHierarchy_EnvironmentIDs(t *testing.T) {
	uc := usecase.NewGetHierarchyUseCase(fixtureReader(), nil)

	envs, err := uc.EnvironmentIDs(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envs.Level != domain.LevelOrganization || !slices.Equal(envs.EnvIDs, []string{"e1", "e2"}) {
		t.Fatalf("unexpected result: %+v", envs)
	}

	envs, err = uc.EnvironmentIDs(context.Background(), "p2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(envs.EnvIDs) != 0 {
		t.Fatalf("expected no environments for p2, got %v", envs.EnvIDs)
	}
}

func TestGetHierarchy_EnvironmentIDs_NotFound(t *testing.T) {
	uc := usecase.NewGetHierarchyUseCase(fixtureReader(), nil)

	_, err := uc.EnvironmentIDs(context.Background(), "missing")
	if !errors.Is(err, usecase.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}
