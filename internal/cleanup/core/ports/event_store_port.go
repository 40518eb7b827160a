package ports

import (
	"context"

	"events-cleanup-service/internal/cleanup/core/domain"
)

// EventStorePort evaluates predicates against the events table. Count and
// Delete must select the same rows for the same predicate.
type EventStorePort interface {
	Count(ctx context.Context, p domain.Predicate) (int64, error)
	Delete(ctx context.Context, p domain.Predicate) (int64, error)
	Summary(ctx context.Context) (*domain.Summary, error)
}

type ScriptRendererPort interface {
	RenderScript(p domain.Predicate) (domain.Script, error)
}
