package bulkedit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Progress counts the products processed for a shop.
type Progress struct {
	ShopID    int64     `gorm:"column:shop_id;type:bigint;primaryKey;autoIncrement:false" json:"shop_id"`
	Processed int64     `gorm:"column:processed;type:bigint;not null;default:0" json:"processed"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name used by Progress.
func (Progress) TableName() string {
	return "bulk_progress"
}

// ProgressCounter is a per-shop completion counter.
type ProgressCounter struct {
	db *gorm.DB
}

// NewProgressCounter creates a counter stored through db.
func NewProgressCounter(db *gorm.DB) *ProgressCounter {
	return &ProgressCounter{db: db}
}

// Migrate creates or updates the bulk_progress table.
func (c *ProgressCounter) Migrate() error {
	return c.db.AutoMigrate(&Progress{})
}

// Increment adds one processed product. It runs outside product
// transactions so that failed products are counted too.
func (c *ProgressCounter) Increment(ctx context.Context, shopID int64) error {
	row := Progress{ShopID: shopID, Processed: 1, UpdatedAt: time.Now()}
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"processed":  gorm.Expr("processed + ?", 1),
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to increment progress of shop %d: %w", shopID, err)
	}
	return nil
}

// Reset sets the counter of a shop back to zero.
func (c *ProgressCounter) Reset(ctx context.Context, shopID int64) error {
	row := Progress{ShopID: shopID, Processed: 0, UpdatedAt: time.Now()}
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"processed":  0,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to reset progress of shop %d: %w", shopID, err)
	}
	return nil
}

// Get returns the number of processed products of a shop, 0 when none.
func (c *ProgressCounter) Get(ctx context.Context, shopID int64) (int64, error) {
	var row Progress
	err := c.db.WithContext(ctx).Where("shop_id = ?", shopID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read progress of shop %d: %w", shopID, err)
	}
	return row.Processed, nil
}
