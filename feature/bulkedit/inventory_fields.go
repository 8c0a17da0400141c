package bulkedit

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"bulk-editor/core/inventory"
	"bulk-editor/core/utils"
	"bulk-editor/feature/listings"

	"github.com/shopspring/decimal"
)

// Inventory verbs.
const (
	VerbChangeTo          = "changeTo"
	VerbIncreaseBy        = "increaseBy"
	VerbDecreaseBy        = "decreaseBy"
	VerbIncreaseByPercent = "increaseByPercent"
	VerbDecreaseByPercent = "decreaseByPercent"
)

// mapProperty rewrites every offering value of prop. Without variations the
// listing-level value and the synthetic offering are rewritten instead.
func mapProperty(p *listings.Product, prop inventory.Property, fn func(old string) string) {
	if p.HasVariations() {
		for i := range p.Offerings {
			o := &p.Offerings[i]
			o.SetValue(prop, fn(o.Value(prop)))
		}
		return
	}

	scalars := p.Scalars()
	value := fn(scalars.Value(prop))
	switch prop {
	case inventory.PropertyPrice:
		scalars.Price = value
	case inventory.PropertyQuantity:
		scalars.Quantity = value
	case inventory.PropertySku:
		scalars.Sku = value
	}
	p.SetScalars(scalars)
	for i := range p.Offerings {
		p.Offerings[i].SetValue(prop, value)
	}
}

// summarize lists the distinct values of prop in offering order.
func summarize(p *listings.Product, prop inventory.Property) string {
	if !p.HasVariations() {
		return p.Scalars().Value(prop)
	}
	seen := make(map[string]struct{})
	var values []string
	for _, o := range p.Offerings {
		v := o.Value(prop)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return strings.Join(values, ", ")
}

// inventoryOf returns the grid to validate. A listing without variations or
// offerings is validated as a single offering built from its scalars.
func inventoryOf(p *listings.Product) inventory.Inventory {
	inv := p.Inventory()
	if !p.HasVariations() && len(inv.Offerings) == 0 {
		s := p.Scalars()
		inv.Offerings = []inventory.Offering{{
			VariationOptions: []inventory.OptionRef{},
			Price:            s.Price,
			Quantity:         s.Quantity,
			Sku:              s.Sku,
			Visibility:       true,
		}}
	}
	return inv
}

func validateInventory(p *listings.Product, catalog inventory.PropertyCatalog, opts inventory.ValidationOptions) (inventory.Result, error) {
	if p == nil {
		return inventory.Result{}, ErrNilProduct
	}
	inv := inventoryOf(p)
	return inventory.Validate(&inv, p.TaxonomyID, catalog, opts)
}

// applyProperty clones p, rewrites prop and records the preview.
func applyProperty(p *listings.Product, name string, prop inventory.Property, suppressPreview bool, fn func(old string) string) *listings.Product {
	next := p.Clone()
	mapProperty(next, prop, fn)
	if !suppressPreview {
		next.SetPreview(name, textPreview(summarize(p, prop), summarize(next, prop)))
	}
	return next
}

// priceField edits offering prices.
type priceField struct {
	env *Env
}

func (f *priceField) Name() string { return "priceInventory" }

func (f *priceField) Verbs() []string {
	return []string{VerbChangeTo, VerbIncreaseBy, VerbDecreaseBy, VerbIncreaseByPercent, VerbDecreaseByPercent}
}

func (f *priceField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeNumber(raw)
}

func (f *priceField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	n, ok := payload.(NumberPayload)
	if !ok {
		return p
	}

	var fn func(old string) string
	switch verb {
	case VerbChangeTo:
		fn = func(string) string { return utils.FormatPrice(n.Value) }
	case VerbIncreaseBy, VerbDecreaseBy, VerbIncreaseByPercent, VerbDecreaseByPercent:
		fn = func(old string) string {
			base, ok := utils.ParsePrice(old)
			if !ok {
				return old
			}
			return utils.FormatPrice(adjustPrice(base, n.Value, verb))
		}
	default:
		return p
	}
	return applyProperty(p, f.Name(), inventory.PropertyPrice, suppressPreview, fn)
}

func (f *priceField) Validate(p *listings.Product) (inventory.Result, error) {
	return validateInventory(p, nil, f.env.Inventory)
}

func adjustPrice(base, amount decimal.Decimal, verb string) decimal.Decimal {
	switch verb {
	case VerbIncreaseBy:
		return base.Add(amount)
	case VerbDecreaseBy:
		return base.Sub(amount)
	case VerbIncreaseByPercent:
		return utils.AdjustByPercent(base, amount, true)
	case VerbDecreaseByPercent:
		return utils.AdjustByPercent(base, amount, false)
	default:
		return base
	}
}

// quantityField edits offering quantities.
type quantityField struct {
	env *Env
}

func (f *quantityField) Name() string { return "quantityInventory" }

func (f *quantityField) Verbs() []string {
	return []string{VerbChangeTo, VerbIncreaseBy, VerbDecreaseBy}
}

// quantityLimit bounds quantity payloads and stored quantities used in
// arithmetic. Anything within it but above MaximumQuantity still reaches
// validation; anything beyond it cannot be represented and is dropped.
var quantityLimit = decimal.NewFromInt(math.MaxInt32)

// Decode accepts whole numbers within ±quantityLimit only.
func (f *quantityField) Decode(verb string, raw json.RawMessage) Payload {
	n, ok := decodeNumber(raw).(NumberPayload)
	if !ok || !n.Value.IsInteger() || n.Value.Abs().GreaterThan(quantityLimit) {
		return nil
	}
	return n
}

func (f *quantityField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	n, ok := payload.(NumberPayload)
	if !ok || n.Value.Abs().GreaterThan(quantityLimit) {
		return p
	}
	amount := n.Value.IntPart()

	var fn func(old string) string
	switch verb {
	case VerbChangeTo:
		fn = func(string) string { return strconv.FormatInt(amount, 10) }
	case VerbIncreaseBy, VerbDecreaseBy:
		if verb == VerbDecreaseBy {
			amount = -amount
		}
		fn = func(old string) string {
			q, ok := utils.ParseQuantity(old)
			if !ok || q > math.MaxInt32 || q < math.MinInt32 {
				return old
			}
			return strconv.FormatInt(int64(q)+amount, 10)
		}
	default:
		return p
	}
	return applyProperty(p, f.Name(), inventory.PropertyQuantity, suppressPreview, fn)
}

func (f *quantityField) Validate(p *listings.Product) (inventory.Result, error) {
	return validateInventory(p, nil, f.env.Inventory)
}

// skuField edits offering SKUs with the text verbs; changeTo sets the SKU.
type skuField struct {
	env *Env
}

func (f *skuField) Name() string { return "skuInventory" }

func (f *skuField) Verbs() []string {
	return []string{VerbChangeTo, VerbAddBefore, VerbAddAfter, VerbFindAndReplace, VerbDelete}
}

func (f *skuField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeTextVerb(verb, raw)
}

func (f *skuField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	if payload == nil {
		return p
	}
	if verb == VerbChangeTo {
		verb = VerbSet
	}
	if _, ok := editText("", verb, payload); !ok {
		return p
	}
	return applyProperty(p, f.Name(), inventory.PropertySku, suppressPreview, func(old string) string {
		sku, _ := editText(old, verb, payload)
		return strings.TrimSpace(sku)
	})
}

func (f *skuField) Validate(p *listings.Product) (inventory.Result, error) {
	return validateInventory(p, nil, f.env.Inventory)
}

// variationsField replaces the variation definition and reconciles the
// offering grid with it.
type variationsField struct {
	env *Env
}

func (f *variationsField) Name() string    { return "variationsInventory" }
func (f *variationsField) Verbs() []string { return []string{VerbChangeTo} }

func (f *variationsField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeVariations(raw)
}

func (f *variationsField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	v, ok := payload.(VariationsPayload)
	if !ok || verb != VerbChangeTo {
		return p
	}

	inv, scalars := inventory.Rebuild(p.Inventory(), p.Scalars(), v.Variations, f.env.IDs)
	for i := range inv.Variations {
		inv.Variations[i].First = len(inv.Variations) == 2 && i == 0
	}

	next := p.Clone()
	next.SetInventory(inv)
	next.SetScalars(scalars)
	if !suppressPreview {
		next.SetPreview(f.Name(), textPreview(describeVariations(p.Variations), describeVariations(inv.Variations)))
	}
	return next
}

func (f *variationsField) Validate(p *listings.Product) (inventory.Result, error) {
	if f.env.Catalog == nil {
		return validateInventory(p, nil, f.env.Inventory)
	}
	return validateInventory(p, f.env.Catalog, f.env.Inventory)
}

// describeVariations renders "Color: Red, Blue; Size: S".
func describeVariations(vars []inventory.Variation) string {
	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		values := make([]string, 0, len(v.Options))
		for _, o := range v.Options {
			values = append(values, o.Value)
		}
		parts = append(parts, v.FormattedName+": "+strings.Join(values, ", "))
	}
	return strings.Join(parts, "; ")
}
