package inventory

import (
	"sort"
	"strconv"
	"strings"
)

// Limits enforced by the marketplace.
const (
	MaximumQuantity                        = 999
	MaximumVariationOptionCombinationCount = 400
	MaximumNumberOfOptions                 = 70
	MaximumOptionNameLength                = 20
	MaximumCustomPropertyNameLength        = 45
	MaximumPriceValue                      = 250000
	MaximumSkuLength                       = 32
	MaximumVariations                      = 2
)

// Custom property ids are seller-defined variations that exist for every category.
const (
	CustomPropertyPrimary   int64 = 513
	CustomPropertySecondary int64 = 514
)

// PlaceholderOptionID fills the slot of a variation that has no options yet.
const PlaceholderOptionID int64 = 0

// combinationSeparator joins option ids into a combination key.
const combinationSeparator = "#"

// Property is an offering value that a variation may influence.
type Property int

const (
	PropertyPrice Property = iota
	PropertyQuantity
	PropertySku
)

// InfluenceProperties lists every property carried per offering besides visibility.
var InfluenceProperties = []Property{PropertyPrice, PropertyQuantity, PropertySku}

// String returns the property name used in logs and validation output.
func (p Property) String() string {
	switch p {
	case PropertyPrice:
		return "price"
	case PropertyQuantity:
		return "quantity"
	case PropertySku:
		return "sku"
	default:
		return "unknown"
	}
}

// Option is a selectable value on a variation.
type Option struct {
	ID       int64  `json:"id"`
	Value    string `json:"value"`
	Label    string `json:"label,omitempty"`
	Sequence int    `json:"sequence"`
}

// Variation is one axis of choice for a listing.
type Variation struct {
	ID                 int64    `json:"id"`
	PropertyID         int64    `json:"property_id"`
	ScaleID            int64    `json:"scale_id,omitempty"`
	FormattedName      string   `json:"formatted_name"`
	Options            []Option `json:"options"`
	InfluencesPrice    bool     `json:"influences_price"`
	InfluencesQuantity bool     `json:"influences_quantity"`
	InfluencesSku      bool     `json:"influences_sku"`
	First              bool     `json:"first"`
}

// Influences reports whether the variation carries distinct values of p per option.
func (v Variation) Influences(p Property) bool {
	switch p {
	case PropertyPrice:
		return v.InfluencesPrice
	case PropertyQuantity:
		return v.InfluencesQuantity
	case PropertySku:
		return v.InfluencesSku
	default:
		return false
	}
}

// IsCustom reports whether the variation uses a seller-defined property.
func (v Variation) IsCustom() bool {
	return v.PropertyID == CustomPropertyPrimary || v.PropertyID == CustomPropertySecondary
}

// OptionRef identifies one option of one variation.
type OptionRef struct {
	VariationID int64 `json:"variation_id"`
	OptionID    int64 `json:"option_id"`
}

// Offering is one sellable combination of options.
type Offering struct {
	ID               int64       `json:"id"`
	VariationOptions []OptionRef `json:"variation_options"`
	Price            string      `json:"price"`
	Quantity         string      `json:"quantity"`
	Sku              string      `json:"sku"`
	Visibility       bool        `json:"visibility"`
}

// Value returns the offering's value for p.
func (o Offering) Value(p Property) string {
	switch p {
	case PropertyPrice:
		return o.Price
	case PropertyQuantity:
		return o.Quantity
	case PropertySku:
		return o.Sku
	default:
		return ""
	}
}

// SetValue stores value as the offering's p.
func (o *Offering) SetValue(p Property, value string) {
	switch p {
	case PropertyPrice:
		o.Price = value
	case PropertyQuantity:
		o.Quantity = value
	case PropertySku:
		o.Sku = value
	}
}

// OptionFor returns the option chosen for variationID in this offering.
func (o Offering) OptionFor(variationID int64) (int64, bool) {
	for _, ref := range o.VariationOptions {
		if ref.VariationID == variationID {
			return ref.OptionID, true
		}
	}
	return 0, false
}

// PairKey identifies the set of option pairs regardless of their order.
func (o Offering) PairKey() string {
	parts := make([]string, len(o.VariationOptions))
	for i, ref := range o.VariationOptions {
		parts[i] = strconv.FormatInt(ref.VariationID, 10) + ":" + strconv.FormatInt(ref.OptionID, 10)
	}
	sort.Strings(parts)
	return strings.Join(parts, combinationSeparator)
}

// Inventory is the variation definition and offering grid of a listing.
type Inventory struct {
	Variations []Variation `json:"variations"`
	Offerings  []Offering  `json:"offerings"`
}

// Scalars are the listing-level fallback values used when no variation exists.
type Scalars struct {
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
	Sku      string `json:"sku"`
}

// Value returns the scalar for p.
func (s Scalars) Value(p Property) string {
	switch p {
	case PropertyPrice:
		return s.Price
	case PropertyQuantity:
		return s.Quantity
	case PropertySku:
		return s.Sku
	default:
		return ""
	}
}

// Clone returns a deep copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := Inventory{
		Variations: make([]Variation, len(inv.Variations)),
		Offerings:  make([]Offering, len(inv.Offerings)),
	}
	for i, v := range inv.Variations {
		v.Options = append([]Option(nil), v.Options...)
		out.Variations[i] = v
	}
	for i, o := range inv.Offerings {
		o.VariationOptions = append([]OptionRef(nil), o.VariationOptions...)
		out.Offerings[i] = o
	}
	return out
}

// combinationKey joins the option ids of refs in the order of vars.
// It fails when refs lacks one of the variations.
func combinationKey(vars []Variation, refs []OptionRef) (string, bool) {
	parts := make([]string, len(vars))
	for i, v := range vars {
		found := false
		for _, ref := range refs {
			if ref.VariationID == v.ID {
				parts[i] = strconv.FormatInt(ref.OptionID, 10)
				found = true
				break
			}
		}
		if !found {
			return "", false
		}
	}
	return strings.Join(parts, combinationSeparator), true
}
