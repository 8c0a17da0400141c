package integrity

import (
	"bulk-editor/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface for integrity checks.
type Feature struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	db     *gorm.DB
}

// NewFeature creates a new integrity feature.
func NewFeature(client storage.Client, bucket, region string, logger *zap.Logger, db *gorm.DB) *Feature {
	return &Feature{
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
		db:     db,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	svc := NewService(f.client, f.bucket, f.region, f.logger, f.db)
	NewHandler(svc).RegisterRoutes(app)
	return nil
}
