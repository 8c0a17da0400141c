package bulkedit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bulk-editor/core/inventory"
)

var (
	// ErrNilProduct is returned when an operation is applied to nothing.
	ErrNilProduct = errors.New("bulkedit: nil product")
	// ErrUnknownOperation is returned for an operation type no field handles.
	ErrUnknownOperation = errors.New("bulkedit: unknown operation")
)

// Operation is one queued edit: "<field>.<verb>" applied to a set of
// products with a field-specific value.
type Operation struct {
	Type     string          `json:"type"`
	Products []int64         `json:"products"`
	Value    json.RawMessage `json:"value"`
}

// Split returns the field and verb of the operation type.
func (o Operation) Split() (field, verb string, err error) {
	field, verb, ok := strings.Cut(o.Type, ".")
	if !ok || field == "" || verb == "" {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownOperation, o.Type)
	}
	return field, verb, nil
}

// Targets reports whether the operation applies to product id.
func (o Operation) Targets(id int64) bool {
	for _, p := range o.Products {
		if p == id {
			return true
		}
	}
	return false
}

// Batch is the envelope of operations submitted for one shop.
type Batch struct {
	JobID      string      `json:"job_id,omitempty"`
	ShopID     int64       `json:"shop_id"`
	Operations []Operation `json:"operations"`
}

// ProductIDs returns every product targeted by the batch, in first-seen order.
func (b Batch) ProductIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, op := range b.Operations {
		for _, id := range op.Products {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// RejectedError reports an operation whose result failed validation. The
// product it was applied to is left unchanged.
type RejectedError struct {
	Operation string
	Result    inventory.Result
}

func (e *RejectedError) Error() string {
	reason := e.Result.Data.Status
	if reason == "" {
		for field, msg := range e.Result.Data.Fields {
			reason = field + ": " + msg
			break
		}
	}
	if reason == "" && len(e.Result.Data.Variations) > 0 {
		reason = e.Result.Data.Variations[0]
	}
	if reason == "" && len(e.Result.Data.Offerings) > 0 {
		reason = "invalid offerings"
	}
	return fmt.Sprintf("bulkedit: %s rejected: %s", e.Operation, reason)
}
