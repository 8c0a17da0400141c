package inventory

import (
	"bulk-editor/core/utils"

	"github.com/shopspring/decimal"
)

// Collapse folds the offering grid of prev into listing-level values, used
// when every variation is removed.
//
// Only visible offerings count. Which offerings are relevant for a property
// depends on how many previous variations influenced it:
//   - none: the first visible offering
//   - one: the first visible offering per option of that variation
//   - two: every visible offering
//
// Quantities are summed (capped at MaximumQuantity), prices take the minimum
// and a SKU survives only when the relevant offerings agree on one value.
// fallback supplies values that cannot be derived.
func Collapse(prev Inventory, fallback Scalars) Scalars {
	return Scalars{
		Price:    collapsePrice(prev, fallback.Price),
		Quantity: collapseQuantity(prev, fallback.Quantity),
		Sku:      collapseSku(prev, fallback.Sku),
	}
}

// relevantOfferings selects the offerings whose values matter for p.
func relevantOfferings(prev Inventory, p Property) []Offering {
	visible := make([]Offering, 0, len(prev.Offerings))
	for _, o := range prev.Offerings {
		if o.Visibility {
			visible = append(visible, o)
		}
	}

	var influencing []Variation
	for _, v := range prev.Variations {
		if v.Influences(p) {
			influencing = append(influencing, v)
		}
	}

	switch len(influencing) {
	case 0:
		if len(visible) == 0 {
			return nil
		}
		return visible[:1]
	case 1:
		variationID := influencing[0].ID
		seen := make(map[int64]struct{})
		out := make([]Offering, 0, len(visible))
		for _, o := range visible {
			optionID, ok := o.OptionFor(variationID)
			if !ok {
				continue
			}
			if _, dup := seen[optionID]; dup {
				continue
			}
			seen[optionID] = struct{}{}
			out = append(out, o)
		}
		return out
	default:
		return visible
	}
}

func collapseQuantity(prev Inventory, fallback string) string {
	total, found := 0, false
	for _, o := range relevantOfferings(prev, PropertyQuantity) {
		n, ok := utils.ParseQuantity(o.Quantity)
		if !ok {
			continue
		}
		total += n
		found = true
	}
	if !found {
		return fallback
	}
	if total > MaximumQuantity {
		total = MaximumQuantity
	}
	return utils.FormatQuantity(total)
}

func collapsePrice(prev Inventory, fallback string) string {
	var lowest decimal.Decimal
	found := false
	for _, o := range relevantOfferings(prev, PropertyPrice) {
		d, ok := utils.ParsePrice(o.Price)
		if !ok {
			continue
		}
		if !found || d.LessThan(lowest) {
			lowest = d
			found = true
		}
	}
	if !found {
		return fallback
	}
	return utils.FormatPrice(lowest)
}

func collapseSku(prev Inventory, fallback string) string {
	relevant := relevantOfferings(prev, PropertySku)
	if len(relevant) == 0 {
		return fallback
	}
	distinct := make(map[string]struct{})
	value := ""
	for _, o := range relevant {
		if o.Sku == "" {
			continue
		}
		distinct[o.Sku] = struct{}{}
		value = o.Sku
	}
	if len(distinct) != 1 {
		return ""
	}
	return value
}
