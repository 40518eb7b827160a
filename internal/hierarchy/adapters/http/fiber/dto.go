package fiber

import "events-cleanup-service/internal/hierarchy/core/domain"

type EnvironmentResponse struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
	Key  *string `json:"key"`
}

type ProjectResponse struct {
	ID           string                `json:"id"`
	Name         *string               `json:"name"`
	Key          *string               `json:"key"`
	Environments []EnvironmentResponse `json:"environments"`
}

type OrganizationResponse struct {
	ID       string            `json:"id"`
	Name     *string           `json:"name"`
	Key      *string           `json:"key"`
	Projects []ProjectResponse `json:"projects"`
}

type WorkspaceResponse struct {
	ID            string                 `json:"id"`
	Name          *string                `json:"name"`
	Key           *string                `json:"key"`
	Organizations []OrganizationResponse `json:"organizations"`
}

type HierarchyResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

type NodeEnvironmentsResponse struct {
	NodeID string   `json:"nodeId"`
	Level  string   `json:"level" example:"project"`
	EnvIDs []string `json:"envIds"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message"`
}

// Child slices are always allocated so empty levels encode as [] rather
// than null.

func toHierarchyResponse(t *domain.Tree) HierarchyResponse {
	out := HierarchyResponse{Workspaces: make([]WorkspaceResponse, 0, len(t.Workspaces))}
	for _, w := range t.Workspaces {
		out.Workspaces = append(out.Workspaces, toWorkspaceResponse(w))
	}
	return out
}

func toWorkspaceResponse(w domain.WorkspaceNode) WorkspaceResponse {
	orgs := make([]OrganizationResponse, 0, len(w.Organizations))
	for _, o := range w.Organizations {
		orgs = append(orgs, toOrganizationResponse(o))
	}
	return WorkspaceResponse{ID: w.ID, Name: w.Name, Key: w.Key, Organizations: orgs}
}

func toOrganizationResponse(o domain.OrganizationNode) OrganizationResponse {
	projects := make([]ProjectResponse, 0, len(o.Projects))
	for _, p := range o.Projects {
		projects = append(projects, toProjectResponse(p))
	}
	return OrganizationResponse{ID: o.ID, Name: o.Name, Key: o.Key, Projects: projects}
}

func toProjectResponse(p domain.ProjectNode) ProjectResponse {
	envs := make([]EnvironmentResponse, 0, len(p.Environments))
	for _, e := range p.Environments {
		envs = append(envs, EnvironmentResponse{ID: e.ID, Name: e.Name, Key: e.Key})
	}
	return ProjectResponse{ID: p.ID, Name: p.Name, Key: p.Key, Environments: envs}
}

func toNodeEnvironmentsResponse(n domain.NodeEnvironments) NodeEnvironmentsResponse {
	ids := n.EnvIDs
	if ids == nil {
		ids = []string{}
	}
	return NodeEnvironmentsResponse{NodeID: n.NodeID, Level: string(n.Level), EnvIDs: ids}
}
