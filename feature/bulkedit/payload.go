package bulkedit

import (
	"bytes"
	"encoding/json"
	"strings"

	"bulk-editor/core/inventory"
	"bulk-editor/core/utils"

	"github.com/shopspring/decimal"
)

// Payload is the decoded value of an operation. Each field verb accepts
// exactly one payload type.
type Payload interface {
	payload()
}

// TextPayload is a piece of text to set, add or delete.
type TextPayload struct {
	Text string
}

// FindReplacePayload replaces every occurrence of Find with Replace.
type FindReplacePayload struct {
	Find    string `json:"find"`
	Replace string `json:"replace"`
}

// ListPayload is a list of values, e.g. tags or image ids.
type ListPayload struct {
	Values []string
}

// IDPayload references a section or category.
type IDPayload struct {
	ID int64
}

// NumberPayload is an amount, a percentage or an absolute value.
type NumberPayload struct {
	Value decimal.Decimal
}

// AttributePayload sets or deletes a category attribute.
type AttributePayload struct {
	PropertyID int64  `json:"property_id"`
	ScaleID    int64  `json:"scale_id"`
	Value      string `json:"value"`
}

// VariationsPayload is a complete variation definition.
type VariationsPayload struct {
	Variations []inventory.Variation
}

func (TextPayload) payload()        {}
func (FindReplacePayload) payload() {}
func (ListPayload) payload()        {}
func (IDPayload) payload()          {}
func (NumberPayload) payload()      {}
func (AttributePayload) payload()   {}
func (VariationsPayload) payload()  {}

// decodeAny decodes raw keeping numbers exact.
func decodeAny(raw json.RawMessage) (any, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, v != nil
}

func decodeText(raw json.RawMessage) Payload {
	v, ok := decodeAny(raw)
	if !ok {
		return nil
	}
	s, ok := utils.ToString(v)
	if !ok {
		return nil
	}
	return TextPayload{Text: s}
}

func decodeFindReplace(raw json.RawMessage) Payload {
	var p FindReplacePayload
	if err := json.Unmarshal(raw, &p); err != nil || p.Find == "" {
		return nil
	}
	return p
}

func decodeList(raw json.RawMessage) Payload {
	v, ok := decodeAny(raw)
	if !ok {
		return nil
	}
	if s, ok := v.(string); ok {
		v = []any{s}
	}
	values, ok := utils.ToStrings(v)
	if !ok {
		return nil
	}
	return ListPayload{Values: values}
}

func decodeID(raw json.RawMessage) Payload {
	v, ok := decodeAny(raw)
	if !ok {
		return nil
	}
	id, ok := utils.ToInt64(v)
	if !ok || id < 0 {
		return nil
	}
	return IDPayload{ID: id}
}

func decodeNumber(raw json.RawMessage) Payload {
	v, ok := decodeAny(raw)
	if !ok {
		return nil
	}
	s, ok := utils.ToString(v)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return NumberPayload{Value: d}
}

func decodeAttribute(raw json.RawMessage) Payload {
	var p AttributePayload
	if err := json.Unmarshal(raw, &p); err != nil || p.PropertyID <= 0 {
		return nil
	}
	p.Value = strings.TrimSpace(p.Value)
	return p
}

func decodeVariations(raw json.RawMessage) Payload {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var vars []inventory.Variation
	if err := json.Unmarshal(raw, &vars); err != nil {
		return nil
	}
	return VariationsPayload{Variations: vars}
}
