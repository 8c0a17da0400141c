package integrity

import (
	"bulk-editor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the schema and storage checks without fixing anything.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if storage, err := h.service.CheckStorage(c.Context()); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = storage
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks and optionally migrates the database schema.
// @Summary Check Schema
// @Description Checks that the database tables match the persisted models. Optionally migrates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Migrate the schema"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Matched && fix {
		l.Info("Attempting to migrate schema")
		if err := h.service.FixSchema(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to migrate schema",
				"details": err.Error(),
			})
		}
		if report, err = h.service.CheckSchema(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the image bucket.
// @Summary Check Storage
// @Description Checks that the image bucket and its folders exist. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create what is missing"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() {
		l.Warn("Storage incomplete", zap.Bool("bucket_exists", report.BucketExists), zap.Strings("missing", report.Missing))

		if fix {
			l.Info("Attempting to fix storage")
			if err := h.service.FixStorage(c.Context(), report); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix storage",
					"details": err.Error(),
					"missing": report.Missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  report.Missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":        "checked",
		"bucket_exists": report.BucketExists,
		"missing":       report.Missing,
	})
}
