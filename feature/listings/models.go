package listings

import (
	"time"

	"bulk-editor/core/inventory"
)

// Listing-level limits.
const (
	MaximumTitleLength    = 140
	MaximumTags           = 13
	MaximumTagLength      = 20
	MaximumMaterials      = 13
	MaximumMaterialLength = 45
	MaximumImages         = 10
	MaximumTextLength     = 64
)

// Attribute is a single-value category attribute, e.g. "Capacity: 12 oz".
type Attribute struct {
	PropertyID int64  `json:"property_id"`
	ScaleID    int64  `json:"scale_id,omitempty"`
	Value      string `json:"value"`
}

// Preview is the before/after rendering of one field after an edit. It is
// presentation only and never persisted.
type Preview struct {
	Before string `json:"before"`
	After  string `json:"after"`
	Markup string `json:"markup"`
}

// Product is a marketplace listing.
type Product struct {
	ID          int64                 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ShopID      int64                 `gorm:"column:shop_id;type:bigint;not null;index" json:"shop_id"`
	Title       string                `gorm:"column:title;type:varchar(140);not null" json:"title"`
	Description string                `gorm:"column:description;type:text" json:"description"`
	Tags        []string              `gorm:"column:tags;type:text;serializer:json" json:"tags"`
	Materials   []string              `gorm:"column:materials;type:text;serializer:json" json:"materials"`
	SectionID   int64                 `gorm:"column:section_id;type:bigint;not null;default:0" json:"section_id"`
	Occasion    string                `gorm:"column:occasion;type:varchar(64)" json:"occasion"`
	Recipient   string                `gorm:"column:recipient;type:varchar(64)" json:"recipient"`
	TaxonomyID  int64                 `gorm:"column:taxonomy_id;type:bigint;not null;default:0" json:"taxonomy_id"`
	Attributes  []Attribute           `gorm:"column:attributes;type:text;serializer:json" json:"attributes"`
	ImageIDs    []string              `gorm:"column:image_ids;type:text;serializer:json" json:"image_ids"`
	Price       string                `gorm:"column:price;type:varchar(16)" json:"price"`
	Quantity    string                `gorm:"column:quantity;type:varchar(8)" json:"quantity"`
	Sku         string                `gorm:"column:sku;type:varchar(32)" json:"sku"`
	Variations  []inventory.Variation `gorm:"column:variations;type:text;serializer:json" json:"variations"`
	Offerings   []inventory.Offering  `gorm:"column:offerings;type:text;serializer:json" json:"offerings"`
	UpdatedAt   time.Time             `gorm:"column:updated_at" json:"updated_at"`

	Preview map[string]Preview `gorm:"-" json:"preview,omitempty"`
}

// TableName overrides the table name used by Product.
func (Product) TableName() string {
	return "products"
}

// Inventory returns the variation grid of the product.
func (p *Product) Inventory() inventory.Inventory {
	return inventory.Inventory{Variations: p.Variations, Offerings: p.Offerings}
}

// SetInventory replaces the variation grid.
func (p *Product) SetInventory(inv inventory.Inventory) {
	p.Variations = inv.Variations
	p.Offerings = inv.Offerings
}

// Scalars returns the listing-level price, quantity and SKU.
func (p *Product) Scalars() inventory.Scalars {
	return inventory.Scalars{Price: p.Price, Quantity: p.Quantity, Sku: p.Sku}
}

// SetScalars replaces the listing-level price, quantity and SKU.
func (p *Product) SetScalars(s inventory.Scalars) {
	p.Price = s.Price
	p.Quantity = s.Quantity
	p.Sku = s.Sku
}

// HasVariations reports whether the product defines any variation.
func (p *Product) HasVariations() bool {
	return len(p.Variations) > 0
}

// SetPreview records the preview of field.
func (p *Product) SetPreview(field string, preview Preview) {
	if p.Preview == nil {
		p.Preview = make(map[string]Preview)
	}
	p.Preview[field] = preview
}

// Clone returns a deep copy of the product.
func (p *Product) Clone() *Product {
	out := *p
	out.Tags = cloneStrings(p.Tags)
	out.Materials = cloneStrings(p.Materials)
	out.ImageIDs = cloneStrings(p.ImageIDs)
	if p.Attributes != nil {
		out.Attributes = append([]Attribute(nil), p.Attributes...)
	}
	inv := p.Inventory().Clone()
	if p.Variations == nil {
		inv.Variations = nil
	}
	if p.Offerings == nil {
		inv.Offerings = nil
	}
	out.SetInventory(inv)
	if p.Preview != nil {
		out.Preview = make(map[string]Preview, len(p.Preview))
		for k, v := range p.Preview {
			out.Preview[k] = v
		}
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
