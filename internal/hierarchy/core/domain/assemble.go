package domain

// Assemble folds the four flat relations into a tree. Children keep their
// source order. Rows whose parent is not loaded are dropped, and parents
// without children get an empty, non-nil slice.
func Assemble(workspaces []Workspace, organizations []Organization, projects []Project, environments []Environment) *Tree {
	envsByProject := groupBy(environments,
		func(e Environment) string { return e.ProjectID },
		func(e Environment) EnvironmentNode {
			return EnvironmentNode{ID: e.ID, Name: e.Name, Key: e.Key}
		})

	projectsByOrg := groupBy(projects,
		func(p Project) string { return p.OrganizationID },
		func(p Project) ProjectNode {
			return ProjectNode{ID: p.ID, Name: p.Name, Key: p.Key, Environments: childrenOf(envsByProject, p.ID)}
		})

	orgsByWorkspace := groupBy(organizations,
		func(o Organization) string { return o.WorkspaceID },
		func(o Organization) OrganizationNode {
			return OrganizationNode{ID: o.ID, Name: o.Name, Key: o.Key, Projects: childrenOf(projectsByOrg, o.ID)}
		})

	tree := &Tree{Workspaces: make([]WorkspaceNode, 0, len(workspaces))}
	for _, w := range workspaces {
		tree.Workspaces = append(tree.Workspaces, WorkspaceNode{
			ID:            w.ID,
			Name:          w.Name,
			Key:           w.Key,
			Organizations: childrenOf(orgsByWorkspace, w.ID),
		})
	}
	return tree
}

func groupBy[T, N any](items []T, parentID func(T) string, node func(T) N) map[string][]N {
	groups := make(map[string][]N)
	for _, item := range items {
		pid := parentID(item)
		groups[pid] = append(groups[pid], node(item))
	}
	return groups
}

func childrenOf[N any](groups map[string][]N, id string) []N {
	if children, ok := groups[id]; ok {
		return children
	}
	return []N{}
}

func (n ProjectNode) EnvIDs() []string {
	ids := make([]string, 0, len(n.Environments))
	seen := make(map[string]struct{}, len(n.Environments))
	for _, e := range n.Environments {
		ids = appendUnique(ids, seen, e.ID)
	}
	return ids
}

func (n OrganizationNode) EnvIDs() []string {
	ids := []string{}
	seen := make(map[string]struct{})
	for _, p := range n.Projects {
		ids = appendUnique(ids, seen, p.EnvIDs()...)
	}
	return ids
}

func (n WorkspaceNode) EnvIDs() []string {
	ids := []string{}
	seen := make(map[string]struct{})
	for _, o := range n.Organizations {
		ids = appendUnique(ids, seen, o.EnvIDs()...)
	}
	return ids
}

func appendUnique(dst []string, seen map[string]struct{}, ids ...string) []string {
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		dst = append(dst, id)
	}
	return dst
}

// EnvIDsUnder finds the node with the given ID at any level and returns the
// environments beneath it. An environment resolves to itself.
func (t *Tree) EnvIDsUnder(nodeID string) (NodeEnvironments, bool) {
	for _, w := range t.Workspaces {
		if w.ID == nodeID {
			return NodeEnvironments{NodeID: nodeID, Level: LevelWorkspace, EnvIDs: w.EnvIDs()}, true
		}
		for _, o := range w.Organizations {
			if o.ID == nodeID {
				return NodeEnvironments{NodeID: nodeID, Level: LevelOrganization, EnvIDs: o.EnvIDs()}, true
			}
			for _, p := range o.Projects {
				if p.ID == nodeID {
					return NodeEnvironments{NodeID: nodeID, Level: LevelProject, EnvIDs: p.EnvIDs()}, true
				}
				for _, e := range p.Environments {
					if e.ID == nodeID {
						return NodeEnvironments{NodeID: nodeID, Level: LevelEnvironment, EnvIDs: []string{e.ID}}, true
					}
				}
			}
		}
	}
	return NodeEnvironments{}, false
}
