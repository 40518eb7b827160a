package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"events-cleanup-service/internal/cleanup/core/domain"
	"events-cleanup-service/internal/cleanup/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const previewMessage = "This is a preview. No events were deleted."

type CleanupUseCase interface {
	Summary(ctx context.Context) (*domain.Summary, error)
	Preview(ctx context.Context, req domain.DeleteRequest) (int64, error)
	Delete(ctx context.Context, req domain.DeleteRequest) (usecase.DeleteResult, error)
	Script(ctx context.Context, req domain.DeleteRequest) (domain.Script, error)
}

type CleanupHandler struct {
	uc CleanupUseCase
}

func NewCleanupHandler(uc CleanupUseCase) *CleanupHandler {
	return &CleanupHandler{uc: uc}
}

// Register mounts the cleanup endpoints under r, typically /api/events.
func (h *CleanupHandler) Register(r fiber.Router) {
	r.Get("/summary", h.GetSummary)

	r.Post("/by-timestamp/preview", h.PreviewDeleteByTimestamp)
	r.Delete("/by-timestamp", h.DeleteByTimestamp)

	r.Post("/by-env-timestamp/preview", h.PreviewDeleteByEnvTimestamp)
	r.Delete("/by-env-timestamp", h.DeleteByEnvTimestamp)

	r.Post("/by-env-flagkey/preview", h.PreviewDeleteByEnvFlagKey)
	r.Delete("/by-env-flagkey", h.DeleteByEnvFlagKey)

	r.Post("/by-project/preview", h.PreviewDeleteByProject)
	r.Delete("/by-project", h.DeleteByProject)

	r.Post("/:kind/sql", h.GenerateScript)
}

// GetSummary godoc
// @Summary Events summary
// @Description Returns total, FlagValue and custom event counts with the oldest and newest timestamps
// @Tags Events Cleanup
// @Produce json
// @Success 200 {object} EventsSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/summary [get]
func (h *CleanupHandler) GetSummary(c *fiber.Ctx) error {
	s, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(EventsSummaryResponse{
		TotalCount:        s.TotalCount,
		FlagValueCount:    s.FlagValueCount,
		CustomEventsCount: s.CustomEventsCount,
		OldestEventDate:   NewFlexibleTime(s.OldestEventDate),
		NewestEventDate:   NewFlexibleTime(s.NewestEventDate),
	})
}

// PreviewDeleteByTimestamp godoc
// @Summary Preview delete by timestamp
// @Tags By Timestamp
// @Accept json
// @Produce json
// @Param request body DeleteByTimestampRequest true "Filters"
// @Success 200 {object} PreviewDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/by-timestamp/preview [post]
func (h *CleanupHandler) PreviewDeleteByTimestamp(c *fiber.Ctx) error {
	return h.preview(c, bindRequest[DeleteByTimestampRequest])
}

// DeleteByTimestamp godoc
// @Summary Delete by timestamp
// @Tags By Timestamp
// @Accept json
// @Produce json
// @Param request body DeleteByTimestampRequest true "Filters"
// @Success 200 {object} DeleteEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/by-timestamp [delete]
func (h *CleanupHandler) DeleteByTimestamp(c *fiber.Ctx) error {
	return h.delete(c, bindRequest[DeleteByTimestampRequest])
}

// PreviewDeleteByEnvTimestamp godoc
// @Summary Preview delete by environment and timestamp
// @Tags By Environment & Timestamp
// @Accept json
// @Produce json
// @Param request body DeleteByEnvTimestampRequest true "Filters"
// @Success 200 {object} PreviewDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/by-env-timestamp/preview [post]
func (h *CleanupHandler) PreviewDeleteByEnvTimestamp(c *fiber.Ctx) error {
	return h.preview(c, bindRequest[DeleteByEnvTimestampRequest])
}

// DeleteByEnvTimestamp godoc
// @Summary Delete by environment and timestamp
// @Tags By Environment & Timestamp
// @Accept json
// @Produce json
// @Param request body DeleteByEnvTimestampRequest true "Filters"
// @Success 200 {object} DeleteEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/by-env-timestamp [delete]
func (h *CleanupHandler) DeleteByEnvTimestamp(c *fiber.Ctx) error {
	return h.delete(c, bindRequest[DeleteByEnvTimestampRequest])
}

// PreviewDeleteByEnvFlagKey godoc
// @Summary Preview delete by environment and feature flag key
// @Tags By Environment & Flag Key
// @Accept json
// @Produce json
// @Param request body DeleteByEnvFlagKeyRequest true "Scope"
// @Success 200 {object} PreviewDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/by-env-flagkey/preview [post]
func (h *CleanupHandler) PreviewDeleteByEnvFlagKey(c *fiber.Ctx) error {
	return h.preview(c, bindRequest[DeleteByEnvFlagKeyRequest])
}

// DeleteByEnvFlagKey godoc
// @Summary Delete by environment and feature flag key
// @Tags By Environment & Flag Key
// @Accept json
// @Produce json
// @Param request body DeleteByEnvFlagKeyRequest true "Scope"
// @Success 200 {object} DeleteEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/by-env-flagkey [delete]
func (h *CleanupHandler) DeleteByEnvFlagKey(c *fiber.Ctx) error {
	return h.delete(c, bindRequest[DeleteByEnvFlagKeyRequest])
}

// PreviewDeleteByProject godoc
// @Summary Preview delete by project
// @Description Resolves the project's environments first; fails with environments_unavailable when no resolver is configured
// @Tags By Project
// @Accept json
// @Produce json
// @Param request body DeleteByProjectRequest true "Filters"
// @Success 200 {object} PreviewDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/by-project/preview [post]
func (h *CleanupHandler) PreviewDeleteByProject(c *fiber.Ctx) error {
	return h.preview(c, bindRequest[DeleteByProjectRequest])
}

// DeleteByProject godoc
// @Summary Delete by project
// @Tags By Project
// @Accept json
// @Produce json
// @Param request body DeleteByProjectRequest true "Filters"
// @Success 200 {object} DeleteEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/by-project [delete]
func (h *CleanupHandler) DeleteByProject(c *fiber.Ctx) error {
	return h.delete(c, bindRequest[DeleteByProjectRequest])
}

// GenerateScript godoc
// @Summary Generate SQL for a cleanup
// @Description Renders the DELETE and COUNT statements for the same filters, without executing them
// @Tags Events Cleanup
// @Accept json
// @Produce json
// @Param kind path string true "by-timestamp | by-env-timestamp | by-env-flagkey | by-project"
// @Param request body ScriptRequest true "Filters"
// @Success 200 {object} ScriptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/{kind}/sql [post]
func (h *CleanupHandler) GenerateScript(c *fiber.Ctx) error {
	kind, err := domain.ParseRequestKind(c.Params("kind"))
	if err != nil {
		return writeError(c, err)
	}

	var req ScriptRequest
	if err := parseBody(c, &req); err != nil {
		return writeBindError(c, err)
	}

	script, err := h.uc.Script(c.UserContext(), req.toDomain(kind))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(ScriptResponse{
		DeleteSQL:  script.DeleteSQL,
		PreviewSQL: script.PreviewSQL,
	})
}

type requestBinder func(c *fiber.Ctx) (domain.DeleteRequest, error)

func (h *CleanupHandler) preview(c *fiber.Ctx, bind requestBinder) error {
	req, err := bind(c)
	if err != nil {
		return writeBindError(c, err)
	}

	count, err := h.uc.Preview(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(PreviewDeleteResponse{
		EventsToDelete: count,
		Message:        previewMessage,
	})
}

func (h *CleanupHandler) delete(c *fiber.Ctx, bind requestBinder) error {
	req, err := bind(c)
	if err != nil {
		return writeBindError(c, err)
	}

	res, err := h.uc.Delete(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(DeleteEventsResponse{
		DeletedCount: res.Deleted,
		Message:      deleteMessage(req, res),
	})
}

func deleteMessage(req domain.DeleteRequest, res usecase.DeleteResult) string {
	switch req.Kind {
	case domain.KindEnvTimestamp:
		return fmt.Sprintf("Successfully deleted %d events for environment '%s'.", res.Deleted, req.EnvID)
	case domain.KindEnvFlagKey:
		return fmt.Sprintf("Successfully deleted %d events for flag '%s' in environment '%s'.", res.Deleted, req.FeatureFlagKey, req.EnvID)
	case domain.KindProject:
		return fmt.Sprintf("Successfully deleted %d events for project '%s' (%d environments).", res.Deleted, req.ProjectID, res.Environments)
	default:
		return fmt.Sprintf("Successfully deleted %d events.", res.Deleted)
	}
}

type requestDTO interface {
	toDomain() domain.DeleteRequest
}

func bindRequest[T requestDTO](c *fiber.Ctx) (domain.DeleteRequest, error) {
	var req T
	if err := parseBody(c, &req); err != nil {
		return domain.DeleteRequest{}, err
	}
	return req.toDomain(), nil
}

// parseBody treats an empty body as an empty JSON object.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

func writeBindError(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: err.Error(),
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrEnvironmentsUnavailable):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "environments_unavailable",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "store_failure",
			Message: err.Error(),
		})
	}
}
