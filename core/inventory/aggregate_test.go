package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapse_QuantityIsCapped(t *testing.T) {
	color := newVariation(1, colorProperty, 11, 12)
	color.InfluencesQuantity = true
	size := newVariation(2, sizeProperty, 21, 22)
	size.InfluencesQuantity = true
	prev := build([]Variation{color, size}, Scalars{Price: "5.00", Quantity: "1"})
	offeringFor(prev, 11, 21).Quantity = "998"
	offeringFor(prev, 11, 22).Quantity = "997"
	offeringFor(prev, 12, 21).Quantity = "998"
	offeringFor(prev, 12, 22).Quantity = "997"

	got := Collapse(prev, Scalars{})

	assert.Equal(t, "999", got.Quantity)
}

func TestCollapse_PriceTakesMinimumPerOption(t *testing.T) {
	color := newVariation(1, colorProperty, 11, 12)
	color.InfluencesPrice = true
	size := newVariation(2, sizeProperty, 21, 22, 23)
	prev := build([]Variation{color, size}, Scalars{Price: "5.00", Quantity: "1"})
	for i := range prev.Offerings {
		if opt, _ := prev.Offerings[i].OptionFor(1); opt == 11 {
			prev.Offerings[i].Price = "1"
		} else {
			prev.Offerings[i].Price = "3"
		}
	}

	got := Collapse(prev, Scalars{})

	assert.Equal(t, "1.00", got.Price)
}

func TestCollapse_Sku(t *testing.T) {
	tests := []struct {
		name string
		skus []string
		want string
	}{
		{name: "single distinct value", skus: []string{"MUG", "MUG"}, want: "MUG"},
		{name: "blank values ignored", skus: []string{"", "MUG"}, want: "MUG"},
		{name: "conflicting values", skus: []string{"MUG-1", "MUG-2"}, want: ""},
		{name: "all blank", skus: []string{"", ""}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := newVariation(1, colorProperty, 11, 12)
			color.InfluencesSku = true
			prev := build([]Variation{color}, Scalars{Price: "5.00", Quantity: "1"})
			offeringFor(prev, 11).Sku = tt.skus[0]
			offeringFor(prev, 12).Sku = tt.skus[1]

			got := Collapse(prev, Scalars{Sku: "FALLBACK"})

			assert.Equal(t, tt.want, got.Sku)
		})
	}
}

func TestCollapse_IgnoresHiddenOfferings(t *testing.T) {
	color := newVariation(1, colorProperty, 11, 12)
	color.InfluencesPrice = true
	color.InfluencesQuantity = true
	prev := build([]Variation{color}, Scalars{Price: "5.00", Quantity: "1"})
	offeringFor(prev, 11).Price = "0.50"
	offeringFor(prev, 11).Quantity = "40"
	offeringFor(prev, 11).Visibility = false
	offeringFor(prev, 12).Price = "2.50"
	offeringFor(prev, 12).Quantity = "2"

	got := Collapse(prev, Scalars{})

	assert.Equal(t, "2.50", got.Price)
	assert.Equal(t, "2", got.Quantity)
}

func TestCollapse_SharedValuesUseFirstVisibleOffering(t *testing.T) {
	color := newVariation(1, colorProperty, 11, 12)
	prev := build([]Variation{color}, Scalars{Price: "5.00", Quantity: "3"})
	offeringFor(prev, 11).Visibility = false
	offeringFor(prev, 11).Quantity = "100"
	offeringFor(prev, 12).Quantity = "7"

	got := Collapse(prev, Scalars{})

	assert.Equal(t, "7", got.Quantity)
	assert.Equal(t, "5.00", got.Price)
}

func TestCollapse_FallsBackWithoutVisibleOfferings(t *testing.T) {
	color := newVariation(1, colorProperty, 11)
	prev := build([]Variation{color}, Scalars{Price: "5.00", Quantity: "3", Sku: "A"})
	prev.Offerings[0].Visibility = false

	fallback := Scalars{Price: "9.99", Quantity: "1", Sku: "B"}
	got := Collapse(prev, fallback)

	assert.Equal(t, fallback, got)
}
