package bulkedit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bulk-editor/core/inventory"
	"bulk-editor/core/queue"
	"bulk-editor/feature/listings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidBatch is returned for a batch without shop or operations, or
// with a variation definition beyond the grid limits.
var ErrInvalidBatch = errors.New("bulkedit: invalid batch")

// OperationResult is the outcome of one previewed operation.
type OperationResult struct {
	Type    string            `json:"type"`
	Applied bool              `json:"applied"`
	Error   string            `json:"error,omitempty"`
	Result  *inventory.Result `json:"result,omitempty"`
}

// PreviewResult is the product after every previewed operation.
type PreviewResult struct {
	Product    *listings.Product `json:"product"`
	Operations []OperationResult `json:"operations"`
}

// Service previews operations and submits batches to the worker queue.
type Service struct {
	registry  *Registry
	publisher queue.Publisher
	progress  *ProgressCounter
	logger    *zap.Logger
}

// NewService creates a new bulk edit service.
func NewService(registry *Registry, publisher queue.Publisher, progress *ProgressCounter, logger *zap.Logger) *Service {
	return &Service{
		registry:  registry,
		publisher: publisher,
		progress:  progress,
		logger:    logger,
	}
}

// Types lists the supported operation types.
func (s *Service) Types() []string {
	return s.registry.Types()
}

// Preview applies ops to p in order and returns the resulting product with
// its previews. An operation without target products applies to p. Nothing
// is persisted.
func (s *Service) Preview(ctx context.Context, p *listings.Product, ops []Operation) (PreviewResult, error) {
	if p == nil {
		return PreviewResult{}, ErrNilProduct
	}
	_ = s.registry.Refresh(ctx)

	current := p
	results := make([]OperationResult, 0, len(ops))
	for _, op := range ops {
		res := OperationResult{Type: op.Type}
		if len(op.Products) > 0 && !op.Targets(p.ID) {
			results = append(results, res)
			continue
		}

		next, err := s.registry.TryApply(current, op, false)
		var rejected *RejectedError
		switch {
		case errors.As(err, &rejected):
			res.Error = rejected.Error()
			res.Result = &rejected.Result
		case err != nil:
			res.Error = err.Error()
		default:
			res.Applied = true
			current = next
		}
		results = append(results, res)
	}

	return PreviewResult{Product: current, Operations: results}, nil
}

// Submit checks batch, resets the shop's progress and publishes the batch
// for the worker. It returns the job id.
func (s *Service) Submit(ctx context.Context, batch Batch) (string, error) {
	if batch.ShopID <= 0 || len(batch.Operations) == 0 {
		return "", ErrInvalidBatch
	}
	for _, op := range batch.Operations {
		step, err := s.registry.Decode(op)
		if err != nil {
			return "", err
		}
		if v, ok := step.Payload.(VariationsPayload); ok && !inventory.WithinGridLimits(v.Variations) {
			return "", fmt.Errorf("%w: %q exceeds the variation limits", ErrInvalidBatch, op.Type)
		}
	}

	batch.JobID = uuid.NewString()
	body, err := json.Marshal(batch)
	if err != nil {
		return "", fmt.Errorf("failed to encode batch: %w", err)
	}

	if s.progress != nil {
		if err := s.progress.Reset(ctx, batch.ShopID); err != nil {
			return "", err
		}
	}
	if err := s.publisher.Publish(ctx, batch.JobID, body); err != nil {
		return "", err
	}

	s.logger.Info("Batch submitted",
		zap.String("job_id", batch.JobID),
		zap.Int64("shop_id", batch.ShopID),
		zap.Int("operations", len(batch.Operations)),
		zap.Int("products", len(batch.ProductIDs())),
	)
	return batch.JobID, nil
}

// Progress returns the number of processed products of a shop.
func (s *Service) Progress(ctx context.Context, shopID int64) (int64, error) {
	if s.progress == nil {
		return 0, nil
	}
	return s.progress.Get(ctx, shopID)
}

// Handle decodes a queued batch and processes it with w. It is used as the
// queue consumer handler.
func (w *Worker) Handle(ctx context.Context, body []byte) error {
	var batch Batch
	if err := json.Unmarshal(body, &batch); err != nil {
		return fmt.Errorf("failed to decode batch: %w", err)
	}
	_, err := w.Process(ctx, batch)
	return err
}
