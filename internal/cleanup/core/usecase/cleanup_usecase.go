package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"events-cleanup-service/internal/cleanup/core/domain"
	"events-cleanup-service/internal/cleanup/core/ports"
)

// ErrEnvironmentsUnavailable is returned when a by-project request cannot be
// scoped because its environments could not be resolved.
var ErrEnvironmentsUnavailable = errors.New("project environments unavailable")

type CleanupUseCase struct {
	store    ports.EventStorePort
	renderer ports.ScriptRendererPort
	resolver ports.EnvironmentResolverPort
	logger   *slog.Logger
}

func NewCleanupUseCase(
	store ports.EventStorePort,
	renderer ports.ScriptRendererPort,
	resolver ports.EnvironmentResolverPort,
	logger *slog.Logger,
) *CleanupUseCase {
	return &CleanupUseCase{
		store:    store,
		renderer: renderer,
		resolver: resolver,
		logger:   resolveLogger(logger),
	}
}

type DeleteResult struct {
	Deleted int64
	// Environments is the number of resolved environments for by-project
	// requests, zero otherwise.
	Environments int
}

func (uc *CleanupUseCase) Summary(ctx context.Context) (*domain.Summary, error) {
	return uc.store.Summary(ctx)
}

// Preview counts the rows Delete would remove for the same request.
func (uc *CleanupUseCase) Preview(ctx context.Context, req domain.DeleteRequest) (int64, error) {
	p, _, err := uc.predicateFor(ctx, req)
	if err != nil {
		return 0, err
	}
	if p.MatchesNothing() {
		return 0, nil
	}
	return uc.store.Count(ctx, p)
}

func (uc *CleanupUseCase) Delete(ctx context.Context, req domain.DeleteRequest) (DeleteResult, error) {
	p, envCount, err := uc.predicateFor(ctx, req)
	if err != nil {
		return DeleteResult{}, err
	}

	res := DeleteResult{Environments: envCount}
	if p.MatchesNothing() {
		uc.logger.InfoContext(ctx, "delete skipped, empty scope",
			slog.String("kind", string(req.Kind)),
			slog.String("predicate", p.String()))
		return res, nil
	}

	deleted, err := uc.store.Delete(ctx, p)
	if err != nil {
		uc.logger.ErrorContext(ctx, "delete failed",
			slog.String("kind", string(req.Kind)),
			slog.String("predicate", p.String()),
			slog.Any("error", err))
		return DeleteResult{}, err
	}
	res.Deleted = deleted

	uc.logger.InfoContext(ctx, "events deleted",
		slog.String("kind", string(req.Kind)),
		slog.String("predicate", p.String()),
		slog.Int64("deleted", deleted))

	return res, nil
}

// Script renders the SQL an operator would run by hand for the request.
func (uc *CleanupUseCase) Script(ctx context.Context, req domain.DeleteRequest) (domain.Script, error) {
	p, _, err := uc.predicateFor(ctx, req)
	if err != nil {
		return domain.Script{}, err
	}
	return uc.renderer.RenderScript(p)
}

// predicateFor is the only place requests become predicates, so preview,
// delete and script always agree.
func (uc *CleanupUseCase) predicateFor(ctx context.Context, req domain.DeleteRequest) (domain.Predicate, int, error) {
	if err := req.Validate(); err != nil {
		return domain.Predicate{}, 0, err
	}

	var envIDs []string
	if req.NeedsEnvironments() {
		res, err := uc.resolver.Resolve(ctx, req.ProjectID)
		if err != nil {
			return domain.Predicate{}, 0, fmt.Errorf("%w: project %q: %w", ErrEnvironmentsUnavailable, req.ProjectID, err)
		}
		if !res.Available {
			return domain.Predicate{}, 0, fmt.Errorf("%w: project %q: %s", ErrEnvironmentsUnavailable, req.ProjectID, res.Reason)
		}
		envIDs = res.EnvIDs
	}

	p, err := domain.BuildPredicate(req, envIDs)
	if err != nil {
		return domain.Predicate{}, 0, err
	}
	return p, len(envIDs), nil
}
