package images

import (
	"errors"

	"bulk-editor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for images.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the image routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/images")
	group.Post("/", h.HandleUpload)
	group.Get("/:id", h.HandleDownload)
	group.Delete("/:id", h.HandleDelete)
}

// HandleUpload stores the request body as an image.
// @Summary Upload Image
// @Description Stores the raw request body. The returned id is the SHA-256 of the content; uploading the same image twice returns the same id.
// @Tags images
// @Accept octet-stream
// @Produce json
// @Success 201 {object} Image "Stored image"
// @Success 200 {object} Image "Image already stored"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /images [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	img, err := h.service.Upload(c.Context(), c.Body())
	switch {
	case errors.Is(err, ErrEmpty), errors.Is(err, ErrUnsupportedType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Image upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}

	status := fiber.StatusCreated
	if img.Existing {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(img)
}

// HandleDownload streams an image.
// @Summary Download Image
// @Tags images
// @Produce octet-stream
// @Param id path string true "Image ID"
// @Success 200 {file} binary "Image content"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /images/{id} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	img, r, err := h.service.Download(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, l, err)
	}

	c.Set(fiber.HeaderContentType, img.ContentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.SendStream(r, int(img.Size))
}

// HandleDelete removes an image.
// @Summary Delete Image
// @Tags images
// @Param id path string true "Image ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /images/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.writeError(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) writeError(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Image request failed", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
