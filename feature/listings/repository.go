package listings

import (
	"context"
	"errors"
	"fmt"

	"bulk-editor/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a product does not exist in the shop.
var ErrNotFound = errors.New("listings: product not found")

// Repository persists products.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the products table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Product{})
}

// Find loads one product of a shop.
func (r *Repository) Find(ctx context.Context, shopID, id int64) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).Where("shop_id = ? AND id = ?", shopID, id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	return &p, nil
}

// FindForUpdate loads a product and locks its row until the surrounding
// transaction ends. SQLite has no row locks and relies on its database lock.
func (r *Repository) FindForUpdate(ctx context.Context, shopID, id int64) (*Product, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() != database.DriverSQLite {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var p Product
	err := q.Where("shop_id = ? AND id = ?", shopID, id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock product %d: %w", id, err)
	}
	return &p, nil
}

// List returns the products of a shop ordered by id.
func (r *Repository) List(ctx context.Context, shopID int64) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products of shop %d: %w", shopID, err)
	}
	return products, nil
}

// Create inserts a new product.
func (r *Repository) Create(ctx context.Context, p *Product) error {
	MaterializeIDs(p)
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Save persists p, replacing synthetic negative ids first.
func (r *Repository) Save(ctx context.Context, p *Product) error {
	MaterializeIDs(p)
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("failed to save product %d: %w", p.ID, err)
	}
	return nil
}

// Transaction runs fn with a repository bound to a new transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// MaterializeIDs replaces the negative ids issued during editing with
// positive ids above the largest id already used by the product. The
// offering references follow the renamed variations and options.
func MaterializeIDs(p *Product) {
	var next int64
	bump := func(id int64) {
		if id > next {
			next = id
		}
	}
	for _, v := range p.Variations {
		bump(v.ID)
		for _, o := range v.Options {
			bump(o.ID)
		}
	}
	for _, o := range p.Offerings {
		bump(o.ID)
	}

	assign := func() int64 {
		next++
		return next
	}

	renamed := make(map[int64]int64)
	for i := range p.Variations {
		v := &p.Variations[i]
		if v.ID < 0 {
			id := assign()
			renamed[v.ID] = id
			v.ID = id
		}
		for j := range v.Options {
			o := &v.Options[j]
			if o.ID < 0 {
				id := assign()
				renamed[o.ID] = id
				o.ID = id
			}
		}
	}
	for i := range p.Offerings {
		o := &p.Offerings[i]
		if o.ID < 0 {
			o.ID = assign()
		}
		for j := range o.VariationOptions {
			ref := &o.VariationOptions[j]
			if id, ok := renamed[ref.VariationID]; ok {
				ref.VariationID = id
			}
			if id, ok := renamed[ref.OptionID]; ok {
				ref.OptionID = id
			}
		}
	}
}
