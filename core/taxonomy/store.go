package taxonomy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const snapshotKey = "taxonomy"

// Store loads the catalog from the database and caches it.
type Store struct {
	db  *gorm.DB
	ttl time.Duration

	mu    sync.RWMutex
	cache *Snapshot
	built time.Time
	sf    singleflight.Group
}

// NewStore creates a store reading taxonomy_properties through db.
func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Snapshot returns the cached catalog, loading it when missing or expired.
// Concurrent callers share a single load.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap, ok := s.fresh(); ok {
		return snap, nil
	}

	result, err, _ := s.sf.Do(snapshotKey, func() (any, error) {
		// Another caller may have finished loading while we waited.
		if snap, ok := s.fresh(); ok {
			return snap, nil
		}

		snap, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cache = snap
		s.built = time.Now()
		s.mu.Unlock()
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Invalidate drops the cached catalog.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()
}

// Migrate creates or updates the taxonomy_properties table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Property{})
}

func (s *Store) fresh() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cache == nil || s.ttl <= 0 {
		return nil, false
	}
	if time.Since(s.built) > s.ttl {
		return nil, false
	}
	return s.cache, true
}

func (s *Store) load(ctx context.Context) (*Snapshot, error) {
	var props []Property
	if err := s.db.WithContext(ctx).Order("taxonomy_id, property_id, scale_id").Find(&props).Error; err != nil {
		return nil, fmt.Errorf("failed to load taxonomy properties: %w", err)
	}
	return NewSnapshot(props), nil
}

// Live returns a catalog answering from the store's cached snapshot. Lookups
// never touch the database, so the catalog is safe to use inside a database
// transaction; Refresh reloads it and must be called outside one.
func (s *Store) Live(logger *zap.Logger) *Live {
	return &Live{store: s, logger: logger}
}

// Live is a Catalog backed by a Store. Before the first successful Refresh it
// only knows the custom properties.
type Live struct {
	store  *Store
	logger *zap.Logger
}

// Refresh reloads the snapshot when it is missing or expired. On failure the
// last loaded snapshot keeps serving and the error is returned.
func (c *Live) Refresh(ctx context.Context) error {
	if _, err := c.store.Snapshot(ctx); err != nil {
		c.logger.Warn("Serving stale taxonomy", zap.Error(err))
		return err
	}
	return nil
}

func (c *Live) current() *Snapshot {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	if c.store.cache != nil {
		return c.store.cache
	}
	return NewSnapshot(nil)
}

// IsValidProperty implements Catalog.
func (c *Live) IsValidProperty(taxonomyID, propertyID, scaleID int64) bool {
	return c.current().IsValidProperty(taxonomyID, propertyID, scaleID)
}

// SuggestedOptions implements Catalog.
func (c *Live) SuggestedOptions(taxonomyID, propertyID int64) []string {
	return c.current().SuggestedOptions(taxonomyID, propertyID)
}

// AllowsProperty implements Catalog.
func (c *Live) AllowsProperty(taxonomyID, propertyID int64) bool {
	return c.current().AllowsProperty(taxonomyID, propertyID)
}
