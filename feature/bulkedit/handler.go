package bulkedit

import (
	"errors"
	"strconv"

	"bulk-editor/core/logger"
	"bulk-editor/feature/listings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PreviewRequest is the body of a preview request.
type PreviewRequest struct {
	Product    *listings.Product `json:"product"`
	Operations []Operation       `json:"operations"`
}

// Handler handles HTTP requests for bulk edits.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bulk edit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/bulk")
	group.Get("/operations", h.HandleOperations)
	group.Post("/preview", h.HandlePreview)
	group.Post("/jobs", h.HandleSubmit)
	group.Get("/progress/:shopId", h.HandleProgress)
}

// HandleOperations lists the supported operation types.
// @Summary List Operations
// @Description Lists every supported "<field>.<verb>" operation type.
// @Tags bulk
// @Produce json
// @Success 200 {object} map[string][]string "Operation types"
// @Router /bulk/operations [get]
func (h *Handler) HandleOperations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"operations": h.service.Types()})
}

// HandlePreview applies operations to a product without saving it.
// @Summary Preview Operations
// @Description Applies the operations to the given product and returns the result with before/after previews. Nothing is persisted.
// @Tags bulk
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Product and operations"
// @Success 200 {object} PreviewResult "Preview"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /bulk/preview [post]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.service.Preview(c.Context(), req.Product, req.Operations)
	if err != nil {
		l.Debug("Preview rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// HandleSubmit queues a batch for the worker.
// @Summary Submit Batch
// @Description Validates the operation types, resets the shop's progress and queues the batch.
// @Tags bulk
// @Accept json
// @Produce json
// @Param batch body Batch true "Batch"
// @Success 202 {object} map[string]string "Job id"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /bulk/jobs [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var batch Batch
	if err := c.BodyParser(&batch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	jobID, err := h.service.Submit(c.Context(), batch)
	switch {
	case errors.Is(err, ErrInvalidBatch), errors.Is(err, ErrUnknownOperation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Failed to submit batch", zap.Int64("shop_id", batch.ShopID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit batch"})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"job_id": jobID})
}

// HandleProgress returns the processed product count of a shop.
// @Summary Get Progress
// @Description Returns the number of products processed since the shop's last submitted batch.
// @Tags bulk
// @Produce json
// @Param shopId path int true "Shop ID"
// @Success 200 {object} map[string]int64 "Progress"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /bulk/progress/{shopId} [get]
func (h *Handler) HandleProgress(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	shopID, err := strconv.ParseInt(c.Params("shopId"), 10, 64)
	if err != nil || shopID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid shop id"})
	}

	processed, err := h.service.Progress(c.Context(), shopID)
	if err != nil {
		l.Error("Failed to read progress", zap.Int64("shop_id", shopID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"shop_id": shopID, "processed": processed})
}
