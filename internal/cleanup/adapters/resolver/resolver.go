// Package resolver provides the project → environment IDs capability used by
// by-project cleanups.
package resolver

import (
	"context"
	"errors"

	"events-cleanup-service/internal/cleanup/core/ports"
	hdomain "events-cleanup-service/internal/hierarchy/core/domain"
	husecase "events-cleanup-service/internal/hierarchy/core/usecase"
)

const unavailableReason = "environment resolution is not configured (set ENV_RESOLVER=hierarchy)"

// Unavailable is the default resolver: it never resolves.
type Unavailable struct{}

var _ ports.EnvironmentResolverPort = Unavailable{}

func (Unavailable) Resolve(ctx context.Context, projectID string) (ports.Resolution, error) {
	return ports.Unavailable(unavailableReason), nil
}

type NodeEnvironmentLister interface {
	EnvironmentIDs(ctx context.Context, nodeID string) (hdomain.NodeEnvironments, error)
}

// Hierarchy resolves projects through the workspace hierarchy. Unknown IDs,
// and IDs that are not projects, resolve to an empty set.
type Hierarchy struct {
	lister NodeEnvironmentLister
}

func NewHierarchy(lister NodeEnvironmentLister) *Hierarchy {
	return &Hierarchy{lister: lister}
}

var _ ports.EnvironmentResolverPort = (*Hierarchy)(nil)

func (h *Hierarchy) Resolve(ctx context.Context, projectID string) (ports.Resolution, error) {
	envs, err := h.lister.EnvironmentIDs(ctx, projectID)
	if errors.Is(err, husecase.ErrNodeNotFound) {
		return ports.Resolved([]string{}), nil
	}
	if err != nil {
		return ports.Resolution{}, err
	}
	if envs.Level != hdomain.LevelProject {
		return ports.Resolved([]string{}), nil
	}
	return ports.Resolved(envs.EnvIDs), nil
}
