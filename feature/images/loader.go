package images

import (
	"bulk-editor/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for images.
type Feature struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewFeature creates a new images feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	return &Feature{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "images"
}

// IsEnabled reports whether object storage is configured.
func (f *Feature) IsEnabled() bool {
	return f.client != nil
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	svc := NewService(NewStore(f.client, f.bucket), f.logger)
	NewHandler(svc).RegisterRoutes(app)
	return nil
}
