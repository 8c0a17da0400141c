package integrity

import (
	"context"
	"errors"

	"bulk-editor/core/storage"
	"bulk-editor/core/taxonomy"
	"bulk-editor/feature/bulkedit"
	"bulk-editor/feature/images"
	"bulk-editor/feature/integrity/checks"
	"bulk-editor/feature/listings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoStorage is returned by storage checks when no client is configured.
var ErrNoStorage = errors.New("storage client is not configured")

// RequiredFolders lists the folders that must exist in the bucket.
var RequiredFolders = []string{images.Prefix}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket, region string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
		db:     db,
	}
}

// Models returns every persisted model.
func Models() []any {
	return []any{&listings.Product{}, &bulkedit.Progress{}, &taxonomy.Property{}}
}

// CheckSchema compares the persisted models with the database.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, listings.Product{}, bulkedit.Progress{}, taxonomy.Property{})
}

// FixSchema creates or updates every table.
func (s *Service) FixSchema() error {
	return Migrate(s.db)
}

// Migrate creates or updates every table on db.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("database connection is nil")
	}
	return db.AutoMigrate(Models()...)
}

// CheckStorage verifies the image bucket.
func (s *Service) CheckStorage(ctx context.Context) (checks.StorageReport, error) {
	if s.client == nil {
		return checks.StorageReport{}, ErrNoStorage
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, RequiredFolders)
}

// FixStorage creates what CheckStorage found missing.
func (s *Service) FixStorage(ctx context.Context, report checks.StorageReport) error {
	if s.client == nil {
		return ErrNoStorage
	}
	return checks.FixStorage(ctx, s.client, report, s.region, s.logger)
}
