package dashboard

import (
	"context"

	"sync-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the dashboard routes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/dashboard")
	group.Get("/stats", h.HandleStats)
	group.Get("/activity", h.HandleActivity)
	group.Get("/logs", list(h, h.service.Logs))
	group.Get("/products", list(h, h.service.Products))
	group.Get("/counterparties", list(h, h.service.Counterparties))
	group.Get("/shops", list(h, h.service.Shops))
	group.Get("/workers", list(h, h.service.Workers))
	group.Get("/orders", list(h, h.service.Orders))
	group.Get("/specifications", list(h, h.service.Specifications))
	group.Get("/returns", list(h, h.service.Returns))
	group.Get("/remains", list(h, h.service.Remains))
	group.Get("/prices", list(h, h.service.Prices))
}

// HandleStats returns row counts per entity kind.
// @Summary Dashboard Stats
// @Description Row counts for every synced table and the audit trail.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Stats
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/dashboard/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Stats query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// HandleActivity returns the records synced per day over the last 7 days.
// @Summary Sync Activity
// @Tags dashboard
// @Produce json
// @Success 200 {array} DailyActivity
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/dashboard/activity [get]
func (h *Handler) HandleActivity(c *fiber.Ctx) error {
	days, err := h.service.Activity(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Activity query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(days)
}

// list adapts a paginated query to a handler reading the page and pageSize
// query parameters.
func list[T any](h *Handler, query func(ctx context.Context, page, size int) (*Page[T], error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := query(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("pageSize", 0))
		if err != nil {
			logger.WithRayID(h.service.logger, c).Error("Listing failed",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(result)
	}
}
