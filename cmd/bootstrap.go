package cmd

import (
	"fmt"

	"bulk-editor/core/config"
	"bulk-editor/core/database"
	"bulk-editor/core/logger"
	"bulk-editor/core/taxonomy"
	"bulk-editor/feature/bulkedit"
	"bulk-editor/feature/listings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment is what every command needs before doing work.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// bootstrap loads configuration, builds the logger and connects to the
// listings database.
func bootstrap() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logg.Info("Connected to listings database", zap.String("driver", cfg.Database.Driver))

	return &environment{cfg: cfg, logger: logg, db: db}, nil
}

// registry builds the field registry against the live taxonomy catalog.
func (e *environment) registry() *bulkedit.Registry {
	store := taxonomy.NewStore(e.db, e.cfg.Taxonomy.TTL())
	return bulkedit.NewRegistry(bulkedit.Env{
		Catalog:   store.Live(e.logger),
		Inventory: e.cfg.Worker.Validation(),
	})
}

// worker builds a batch worker backed by the listings database.
func (e *environment) worker() *bulkedit.Worker {
	return bulkedit.NewWorker(
		e.registry(),
		listings.NewRepository(e.db),
		bulkedit.NewProgressCounter(e.db),
		e.cfg.Worker,
		e.logger,
	)
}
