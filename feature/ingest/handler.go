package ingest

import (
	"errors"

	"sync-gateway/core/archive"
	"sync-gateway/core/logger"
	"sync-gateway/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the ERP-facing sync routes.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/sync")
	group.Post("/push", h.HandlePush)
	group.Get("/kinds", h.HandleKinds)
	group.Get("/archive", h.HandleArchive)
	group.Post("/replay", h.HandleReplay)
}

// HandlePush applies one ERP batch.
// @Summary Push Batch
// @Description Reconciles a batch of one entity kind into the store. The whole batch is applied atomically.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body PushRequest true "Sync envelope"
// @Success 200 {object} map[string]interface{} "Batch applied"
// @Failure 400 {object} map[string]interface{} "Malformed payload or unknown kind"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/sync/push [post]
func (h *Handler) HandlePush(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req PushRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid push body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.service.Push(c.UserContext(), req)
	if err != nil {
		return h.failure(c, l, result, err)
	}

	l.Info("Batch pushed",
		zap.String("source", req.Source),
		zap.String("kind", req.DataType),
		zap.String("batch_id", result.BatchID),
	)
	return c.JSON(batchResponse(result))
}

// HandleKinds lists accepted entity kinds.
// @Summary List Entity Kinds
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/sync/kinds [get]
func (h *Handler) HandleKinds(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"kinds": h.service.Kinds()})
}

// HandleArchive lists archived batches.
// @Summary List Archived Batches
// @Tags sync
// @Produce json
// @Param kind query string false "Entity kind"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Archive disabled"
// @Router /api/sync/archive [get]
func (h *Handler) HandleArchive(c *fiber.Ctx) error {
	entries, err := h.service.Archived(c.UserContext(), c.Query("kind"), c.QueryInt("limit", 50))
	if errors.Is(err, ErrArchiveDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Archive listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if entries == nil {
		entries = []archive.Entry{}
	}
	return c.JSON(fiber.Map{"items": entries, "total": len(entries)})
}

type replayRequest struct {
	Key string `json:"key"`
}

// HandleReplay re-applies an archived batch.
// @Summary Replay Archived Batch
// @Tags sync
// @Accept json
// @Produce json
// @Param request body replayRequest true "Archive key"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Archive disabled"
// @Router /api/sync/replay [post]
func (h *Handler) HandleReplay(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req replayRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	result, err := h.service.Replay(c.UserContext(), req.Key)
	switch {
	case errors.Is(err, ErrArchiveDisabled):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, archive.ErrInvalidKey):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return h.failure(c, l, result, err)
	}
	return c.JSON(batchResponse(result))
}

// failure maps a batch error onto a status code: problems with the batch
// itself are 400, everything else 500.
func (h *Handler) failure(c *fiber.Ctx, l *zap.Logger, result *reconcile.Result, err error) error {
	status := fiber.StatusInternalServerError
	if reconcile.IsClientError(err) {
		status = fiber.StatusBadRequest
	}
	l.Error("Batch rejected", zap.Int("status", status), zap.Error(err))

	body := fiber.Map{"error": err.Error()}
	if result != nil {
		body["batch_id"] = result.BatchID
	}
	return c.Status(status).JSON(body)
}

func batchResponse(result *reconcile.Result) fiber.Map {
	skipped := result.Skipped
	if skipped == nil {
		skipped = []reconcile.IntegrityViolation{}
	}
	return fiber.Map{
		"message":  summary(result),
		"count":    result.Attempted,
		"applied":  result.Applied,
		"batch_id": result.BatchID,
		"skipped":  skipped,
	}
}
