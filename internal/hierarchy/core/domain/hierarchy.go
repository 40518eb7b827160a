package domain

// Flat rows as stored. Name and Key are optional.

type Workspace struct {
	ID   string
	Name *string
	Key  *string
}

type Organization struct {
	ID          string
	WorkspaceID string
	Name        *string
	Key         *string
}

type Project struct {
	ID             string
	OrganizationID string
	Name           *string
	Key            *string
}

type Environment struct {
	ID        string
	ProjectID string
	Name      *string
	Key       *string
}

type Level string

const (
	LevelWorkspace    Level = "workspace"
	LevelOrganization Level = "organization"
	LevelProject      Level = "project"
	LevelEnvironment  Level = "environment"
)

type EnvironmentNode struct {
	ID   string
	Name *string
	Key  *string
}

type ProjectNode struct {
	ID           string
	Name         *string
	Key          *string
	Environments []EnvironmentNode
}

type OrganizationNode struct {
	ID       string
	Name     *string
	Key      *string
	Projects []ProjectNode
}

type WorkspaceNode struct {
	ID            string
	Name          *string
	Key           *string
	Organizations []OrganizationNode
}

// Tree is a read-only projection built for a single response.
type Tree struct {
	Workspaces []WorkspaceNode
}

// NodeEnvironments is the flattened environment set under one node.
type NodeEnvironments struct {
	NodeID string
	Level  Level
	EnvIDs []string
}
