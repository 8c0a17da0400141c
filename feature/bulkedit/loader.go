package bulkedit

import (
	"bulk-editor/core/queue"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface for bulk edits.
type Feature struct {
	registry  *Registry
	publisher queue.Publisher
	db        *gorm.DB
	logger    *zap.Logger
}

// NewFeature creates a new bulk edit feature. db may be nil, in which case
// progress is not tracked.
func NewFeature(registry *Registry, publisher queue.Publisher, db *gorm.DB, logger *zap.Logger) *Feature {
	return &Feature{
		registry:  registry,
		publisher: publisher,
		db:        db,
		logger:    logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "bulkedit"
}

// IsEnabled reports whether a queue publisher is configured.
func (f *Feature) IsEnabled() bool {
	return f.publisher != nil
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	var progress *ProgressCounter
	if f.db != nil {
		progress = NewProgressCounter(f.db)
	}
	svc := NewService(f.registry, f.publisher, progress, f.logger)
	NewHandler(svc).RegisterRoutes(app)
	return nil
}
