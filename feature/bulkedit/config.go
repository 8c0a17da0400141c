package bulkedit

import "bulk-editor/core/inventory"

// Config holds configuration for the batch worker.
type Config struct {
	// BatchSize is the number of products processed together.
	BatchSize int `mapstructure:"batch_size" default:"50"`
	// Concurrency bounds the products processed in parallel within a batch.
	Concurrency int `mapstructure:"concurrency" default:"5"`
	// AllowNoStock accepts inventories where every quantity is 0.
	AllowNoStock bool `mapstructure:"allow_no_stock" default:"false"`
}

// Validation returns the inventory rules bulk edits are checked against.
// Empty prices and quantities stay errors.
func (c Config) Validation() inventory.ValidationOptions {
	return inventory.ValidationOptions{AllowNoStock: c.AllowNoStock}
}

func (c Config) batchSize() int {
	if c.BatchSize <= 0 {
		return 50
	}
	return c.BatchSize
}

func (c Config) concurrency() int {
	if c.Concurrency <= 0 {
		return 1
	}
	return c.Concurrency
}
