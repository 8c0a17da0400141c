package bulkedit

import (
	"encoding/json"
	"testing"

	"bulk-editor/core/database"
	"bulk-editor/core/inventory"
	"bulk-editor/core/taxonomy"
	"bulk-editor/feature/listings"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const mugCategory int64 = 1633

// newProduct returns a listing without variations.
func newProduct() *listings.Product {
	return &listings.Product{
		ID:         1,
		ShopID:     7,
		Title:      "Ceramic mug",
		Tags:       []string{"mug", "ceramic"},
		TaxonomyID: mugCategory,
		Price:      "10.00",
		Quantity:   "5",
		Sku:        "MUG",
		Variations: []inventory.Variation{},
		Offerings: []inventory.Offering{{
			ID:               1,
			VariationOptions: []inventory.OptionRef{},
			Price:            "10.00",
			Quantity:         "5",
			Sku:              "MUG",
			Visibility:       true,
		}},
	}
}

// newVariedProduct returns a listing with one color variation that sets
// prices per option.
func newVariedProduct() *listings.Product {
	p := newProduct()
	p.Variations = []inventory.Variation{{
		ID:              10,
		PropertyID:      inventory.CustomPropertyPrimary,
		FormattedName:   "Color",
		InfluencesPrice: true,
		Options: []inventory.Option{
			{ID: 11, Value: "Red"},
			{ID: 12, Value: "Blue", Sequence: 1},
		},
	}}
	p.Offerings = []inventory.Offering{
		{ID: 21, VariationOptions: []inventory.OptionRef{{VariationID: 10, OptionID: 11}}, Price: "10.00", Quantity: "5", Visibility: true},
		{ID: 22, VariationOptions: []inventory.OptionRef{{VariationID: 10, OptionID: 12}}, Price: "12.00", Quantity: "5", Visibility: true},
	}
	return p
}

func newSnapshot() *taxonomy.Snapshot {
	return taxonomy.NewSnapshot([]taxonomy.Property{
		{TaxonomyID: mugCategory, PropertyID: 200, Name: "Primary color"},
		{TaxonomyID: mugCategory, PropertyID: 300, Name: "Capacity"},
		{TaxonomyID: 1700, PropertyID: 200, Name: "Primary color"},
	})
}

func newRegistry() *Registry {
	return NewRegistry(Env{Catalog: newSnapshot()})
}

func op(typ string, value any, products ...int64) Operation {
	raw, _ := json.Marshal(value)
	return Operation{Type: typ, Products: products, Value: raw}
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, listings.NewRepository(db).Migrate())
	require.NoError(t, NewProgressCounter(db).Migrate())
	return db
}
