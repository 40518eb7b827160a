package domain_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"events-cleanup-service/internal/hierarchy/core/domain"
)

func name(s string) *string { return &s }

// one workspace -> one org -> p1 (e1, e2) and p2 (no environments)
func scenario() *domain.Tree {
	return domain.Assemble(
		[]domain.Workspace{{ID: "w1", Name: name("Main")}},
		[]domain.Organization{{ID: "o1", WorkspaceID: "w1"}},
		[]domain.Project{
			{ID: "p1", OrganizationID: "o1"},
			{ID: "p2", OrganizationID: "o1"},
		},
		[]domain.Environment{
			{ID: "e1", ProjectID: "p1", Key: name("dev")},
			{ID: "e2", ProjectID: "p1", Key: name("prod")},
		},
	)
}

func TestAssemble_Scenario(t *testing.T) {
	tree := scenario()

	if len(tree.Workspaces) != 1 || len(tree.Workspaces[0].Organizations) != 1 {
		t.Fatalf("unexpected tree: %+v", tree)
	}
	org := tree.Workspaces[0].Organizations[0]
	if len(org.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(org.Projects))
	}

	if got := org.EnvIDs(); !slices.Equal(got, []string{"e1", "e2"}) {
		t.Fatalf("expected envIdsUnder(org)=[e1 e2], got %v", got)
	}

	p2 := org.Projects[1]
	if p2.Environments == nil {
		t.Fatalf("expected empty, non-nil environments for p2")
	}
	if got := p2.EnvIDs(); got == nil || len(got) != 0 {
		t.Fatalf("expected envIdsUnder(p2)={}, got %v", got)
	}

	if *tree.Workspaces[0].Name != "Main" || *org.Projects[0].Environments[1].Key != "prod" {
		t.Fatalf("expected names and keys to be carried over")
	}
}

func TestAssemble_OrphansAreDropped(t *testing.T) {
	tree := domain.Assemble(
		[]domain.Workspace{{ID: "w1"}},
		[]domain.Organization{{ID: "o1", WorkspaceID: "w1"}, {ID: "o-orphan", WorkspaceID: "w-missing"}},
		[]domain.Project{{ID: "p1", OrganizationID: "o1"}, {ID: "p-orphan", OrganizationID: "o-missing"}},
		[]domain.Environment{{ID: "e1", ProjectID: "p1"}, {ID: "e-orphan", ProjectID: "p-missing"}},
	)

	w := tree.Workspaces[0]
	if len(w.Organizations) != 1 || w.Organizations[0].ID != "o1" {
		t.Fatalf("expected only o1, got %+v", w.Organizations)
	}
	if len(w.Organizations[0].Projects) != 1 {
		t.Fatalf("expected only p1, got %+v", w.Organizations[0].Projects)
	}
	if got := w.EnvIDs(); !slices.Equal(got, []string{"e1"}) {
		t.Fatalf("expected [e1], got %v", got)
	}
	for _, id := range []string{"o-orphan", "p-orphan", "e-orphan"} {
		if _, ok := tree.EnvIDsUnder(id); ok {
			t.Fatalf("orphan %s should not be reachable", id)
		}
	}
}

func TestAssemble_Empty(t *testing.T) {
	tree := domain.Assemble(nil, nil, nil, nil)
	if tree.Workspaces == nil || len(tree.Workspaces) != 0 {
		t.Fatalf("expected empty, non-nil workspace list")
	}
}

func TestAssemble_KeepsSourceOrder(t *testing.T) {
	tree := domain.Assemble(
		[]domain.Workspace{{ID: "w2"}, {ID: "w1"}},
		nil,
		nil,
		nil,
	)
	if tree.Workspaces[0].ID != "w2" || tree.Workspaces[1].ID != "w1" {
		t.Fatalf("expected source order, got %+v", tree.Workspaces)
	}
}

func TestTree_EnvIDsUnder(t *testing.T) {
	tree := scenario()

	cases := []struct {
		id    string
		level domain.Level
		want  []string
	}{
		{"w1", domain.LevelWorkspace, []string{"e1", "e2"}},
		{"o1", domain.LevelOrganization, []string{"e1", "e2"}},
		{"p1", domain.LevelProject, []string{"e1", "e2"}},
		{"p2", domain.LevelProject, []string{}},
		{"e2", domain.LevelEnvironment, []string{"e2"}},
	}

	for _, tc := range cases {
		got, ok := tree.EnvIDsUnder(tc.id)
		if !ok {
			t.Fatalf("%s: expected node to be found", tc.id)
		}
		if got.Level != tc.level || !slices.Equal(got.EnvIDs, tc.want) {
			t.Fatalf("%s: expected %s %v, got %s %v", tc.id, tc.level, tc.want, got.Level, got.EnvIDs)
		}
	}

	if _, ok := tree.EnvIDsUnder("nope"); ok {
		t.Fatalf("expected unknown node not to be found")
	}
}

// genShape yields, per organization, the number of environments of each
// project.
func genShape() gopter.Gen {
	return gen.SliceOfN(3, gen.SliceOfN(3, gen.IntRange(0, 4)))
}

func TestProperty_WorkspaceEnvIDsIsUnionOfOrganizations(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("envIdsUnder(workspace) = union of envIdsUnder(org) = union of envIdsUnder(project)", prop.ForAll(
		func(shape [][]int) bool {
			var orgs []domain.Organization
			var projects []domain.Project
			var envs []domain.Environment
			total := 0
			for oi, envCounts := range shape {
				orgID := fmt.Sprintf("o%d", oi)
				orgs = append(orgs, domain.Organization{ID: orgID, WorkspaceID: "w"})
				for pi, n := range envCounts {
					projectID := fmt.Sprintf("%s-p%d", orgID, pi)
					projects = append(projects, domain.Project{ID: projectID, OrganizationID: orgID})
					for ei := 0; ei < n; ei++ {
						envs = append(envs, domain.Environment{ID: fmt.Sprintf("%s-e%d", projectID, ei), ProjectID: projectID})
						total++
					}
				}
			}

			tree := domain.Assemble([]domain.Workspace{{ID: "w"}}, orgs, projects, envs)
			ws := tree.Workspaces[0]

			var fromOrgs, fromProjects []string
			for _, o := range ws.Organizations {
				fromOrgs = append(fromOrgs, o.EnvIDs()...)
				for _, p := range o.Projects {
					fromProjects = append(fromProjects, p.EnvIDs()...)
				}
			}

			got := ws.EnvIDs()
			sorted := slices.Clone(got)
			slices.Sort(sorted)
			return len(got) == total &&
				slices.Equal(got, fromOrgs) &&
				slices.Equal(got, fromProjects) &&
				len(slices.Compact(sorted)) == len(got)
		},
		genShape(),
	))

	properties.TestingRun(t)
}
