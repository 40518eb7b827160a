// Package fiber exposes liveness and database health endpoints.
package fiber

import (
	"context"
	"net/http"
	"time"

	"events-cleanup-service/internal/cleanup/core/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	statusHealthy   = "Healthy"
	statusUnhealthy = "Unhealthy"
	databaseName    = "PostgreSQL"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type EventCounter interface {
	Count(ctx context.Context, p domain.Predicate) (int64, error)
}

type HealthResponse struct {
	Status    string    `json:"status" example:"Healthy"`
	Timestamp time.Time `json:"timestamp"`
}

type DatabaseHealthResponse struct {
	Status     string    `json:"status" example:"Healthy"`
	Database   string    `json:"database" example:"PostgreSQL"`
	Message    string    `json:"message"`
	EventCount *int64    `json:"eventCount,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type HealthHandler struct {
	db     Pinger
	events EventCounter
	now    func() time.Time
}

func NewHealthHandler(db Pinger, events EventCounter) *HealthHandler {
	return &HealthHandler{db: db, events: events, now: time.Now}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/", h.GetHealth)
	r.Get("/database", h.GetDatabaseHealth)
}

// GetHealth godoc
// @Summary API health
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{
		Status:    statusHealthy,
		Timestamp: h.now().UTC(),
	})
}

// GetDatabaseHealth godoc
// @Summary Database health
// @Description Pings the database and counts events; failures are reported with status Unhealthy
// @Tags Health
// @Produce json
// @Success 200 {object} DatabaseHealthResponse
// @Router /api/health/database [get]
func (h *HealthHandler) GetDatabaseHealth(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.db.Ping(ctx); err != nil {
		return h.unhealthy(c, "ping_failed", err)
	}

	// An empty predicate counts every row.
	count, err := h.events.Count(ctx, domain.Predicate{})
	if err != nil {
		return h.unhealthy(c, "query_failed", err)
	}

	return c.Status(http.StatusOK).JSON(DatabaseHealthResponse{
		Status:     statusHealthy,
		Database:   databaseName,
		Message:    "Database connection successful",
		EventCount: &count,
		Timestamp:  h.now().UTC(),
	})
}

// Failures still answer 200 so the body, not the status, carries the verdict.
func (h *HealthHandler) unhealthy(c *fiber.Ctx, code string, err error) error {
	return c.Status(http.StatusOK).JSON(DatabaseHealthResponse{
		Status:    statusUnhealthy,
		Database:  databaseName,
		Message:   err.Error(),
		Error:     code,
		Timestamp: h.now().UTC(),
	})
}
