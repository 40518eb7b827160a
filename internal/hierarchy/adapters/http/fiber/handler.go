package fiber

import (
	"context"
	"errors"
	"net/http"

	"events-cleanup-service/internal/hierarchy/core/domain"
	"events-cleanup-service/internal/hierarchy/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetHierarchyUseCase interface {
	Execute(ctx context.Context) (*domain.Tree, error)
	EnvironmentIDs(ctx context.Context, nodeID string) (domain.NodeEnvironments, error)
}

type HierarchyHandler struct {
	uc GetHierarchyUseCase
}

func NewHierarchyHandler(uc GetHierarchyUseCase) *HierarchyHandler {
	return &HierarchyHandler{uc: uc}
}

// Register mounts the hierarchy endpoints under r, typically /api/hierarchy.
func (h *HierarchyHandler) Register(r fiber.Router) {
	r.Get("/", h.GetHierarchy)
	r.Get("/nodes/:id/environments", h.GetNodeEnvironments)
}

// GetHierarchy godoc
// @Summary Workspace hierarchy
// @Description Workspaces with their organizations, projects and environments, rebuilt on every call
// @Tags Hierarchy
// @Produce json
// @Success 200 {object} HierarchyResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/hierarchy [get]
func (h *HierarchyHandler) GetHierarchy(c *fiber.Ctx) error {
	tree, err := h.uc.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "store_failure",
			Message: err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(toHierarchyResponse(tree))
}

// GetNodeEnvironments godoc
// @Summary Environment IDs under a node
// @Description Every environment ID beneath a workspace, organization, project or environment
// @Tags Hierarchy
// @Produce json
// @Param id path string true "Node ID"
// @Success 200 {object} NodeEnvironmentsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/hierarchy/nodes/{id}/environments [get]
func (h *HierarchyHandler) GetNodeEnvironments(c *fiber.Ctx) error {
	envs, err := h.uc.EnvironmentIDs(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNodeNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "store_failure",
			Message: err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(toNodeEnvironmentsResponse(envs))
}
