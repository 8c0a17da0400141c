package bulkedit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"bulk-editor/feature/listings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// errDryRun rolls back a product transaction after a successful dry run.
var errDryRun = errors.New("bulkedit: dry run")

// Summary counts the outcome of a processed batch.
type Summary struct {
	JobID     string `json:"job_id,omitempty"`
	ShopID    int64  `json:"shop_id"`
	Processed int64  `json:"processed"`
	Updated   int64  `json:"updated"`
	Unchanged int64  `json:"unchanged"`
	Failed    int64  `json:"failed"`
	Rejected  int64  `json:"rejected"`
	Skipped   int64  `json:"skipped_operations"`
}

type counters struct {
	processed, updated, unchanged, failed, rejected atomic.Int64
}

type plannedOp struct {
	op   Operation
	step Step
}

// Worker applies queued batches to stored products. Every product is edited
// in its own transaction; a failing product is logged and skipped without
// affecting the others.
type Worker struct {
	registry *Registry
	repo     *listings.Repository
	progress *ProgressCounter
	cfg      Config
	logger   *zap.Logger
	dryRun   bool
}

// NewWorker creates a worker. progress may be nil.
func NewWorker(registry *Registry, repo *listings.Repository, progress *ProgressCounter, cfg Config, logger *zap.Logger) *Worker {
	return &Worker{
		registry: registry,
		repo:     repo,
		progress: progress,
		cfg:      cfg,
		logger:   logger,
	}
}

// DryRun returns a worker that validates and applies everything but rolls
// every transaction back and leaves progress untouched.
func (w *Worker) DryRun() *Worker {
	c := *w
	c.dryRun = true
	return &c
}

// Process applies batch. Products are split into chunks of Config.BatchSize
// and each chunk is processed with at most Config.Concurrency products in
// flight. Only an invalid envelope or a cancelled context return an error.
func (w *Worker) Process(ctx context.Context, batch Batch) (Summary, error) {
	summary := Summary{JobID: batch.JobID, ShopID: batch.ShopID}
	if batch.ShopID <= 0 {
		return summary, fmt.Errorf("bulkedit: invalid shop id %d", batch.ShopID)
	}

	l := w.logger.With(zap.Int64("shop_id", batch.ShopID), zap.String("job_id", batch.JobID))

	plan := make([]plannedOp, 0, len(batch.Operations))
	for _, op := range batch.Operations {
		step, err := w.registry.Decode(op)
		if err != nil {
			l.Warn("Skipping operation", zap.String("operation", op.Type), zap.Error(err))
			summary.Skipped++
			continue
		}
		plan = append(plan, plannedOp{op: op, step: step})
	}

	ids := batch.ProductIDs()
	size := w.cfg.batchSize()
	var c counters

	for start := 0; start < len(ids); start += size {
		if err := ctx.Err(); err != nil {
			return w.fill(summary, &c), err
		}
		end := min(start+size, len(ids))

		// Catalog lookups inside product transactions read this snapshot; a
		// failed reload is logged by the catalog and the old one keeps serving.
		_ = w.registry.Refresh(ctx)

		var g errgroup.Group
		g.SetLimit(w.cfg.concurrency())
		for _, id := range ids[start:end] {
			g.Go(func() error {
				w.processProduct(ctx, l, batch.ShopID, id, plan, &c)
				return nil
			})
		}
		_ = g.Wait()

		l.Debug("Chunk processed", zap.Int("from", start), zap.Int("to", end))
	}

	summary = w.fill(summary, &c)
	l.Info("Batch processed",
		zap.Int64("processed", summary.Processed),
		zap.Int64("updated", summary.Updated),
		zap.Int64("failed", summary.Failed),
		zap.Int64("rejected", summary.Rejected),
		zap.Bool("dry_run", w.dryRun),
	)
	return summary, nil
}

func (w *Worker) fill(s Summary, c *counters) Summary {
	s.Processed = c.processed.Load()
	s.Updated = c.updated.Load()
	s.Unchanged = c.unchanged.Load()
	s.Failed = c.failed.Load()
	s.Rejected = c.rejected.Load()
	return s
}

// processProduct applies every planned operation targeting id. The progress
// counter is incremented once whatever the outcome, even when ctx is
// cancelled while the product is in flight.
func (w *Worker) processProduct(ctx context.Context, l *zap.Logger, shopID, id int64, plan []plannedOp, c *counters) {
	l = l.With(zap.Int64("product_id", id))
	defer func() {
		c.processed.Add(1)
		if w.progress == nil || w.dryRun {
			return
		}
		if err := w.progress.Increment(context.WithoutCancel(ctx), shopID); err != nil {
			l.Error("Failed to record progress", zap.Error(err))
		}
	}()

	changed := false
	err := w.repo.Transaction(ctx, func(tx *listings.Repository) error {
		original, err := tx.FindForUpdate(ctx, shopID, id)
		if err != nil {
			return err
		}

		current := original
		for _, planned := range plan {
			if !planned.op.Targets(id) {
				continue
			}
			next, err := TryApply(current, planned.step, true)
			if err != nil {
				if IsRejected(err) {
					c.rejected.Add(1)
					l.Debug("Operation discarded", zap.String("operation", planned.op.Type), zap.Error(err))
					continue
				}
				return fmt.Errorf("%s: %w", planned.op.Type, err)
			}
			current = next
		}

		if current == original {
			return nil
		}
		changed = true
		if err := tx.Save(ctx, current); err != nil {
			return err
		}
		if w.dryRun {
			return errDryRun
		}
		return nil
	})

	switch {
	case err == nil || errors.Is(err, errDryRun):
		if changed {
			c.updated.Add(1)
		} else {
			c.unchanged.Add(1)
		}
	default:
		c.failed.Add(1)
		l.Error("Product update failed", zap.Error(err))
	}
}
