package taxonomy

import (
	"testing"

	"bulk-editor/core/inventory"

	"github.com/stretchr/testify/assert"
)

const (
	mugs    int64 = 1
	shirts  int64 = 2
	color   int64 = 200
	size    int64 = 100
	inches  int64 = 5
	letters int64 = 7
)

func fixtures() []Property {
	return []Property{
		{TaxonomyID: mugs, PropertyID: color, Name: "Color", SuggestedValues: []string{"Red", "Blue"}},
		{TaxonomyID: shirts, PropertyID: color, Name: "Color", SuggestedValues: []string{"Black"}},
		{TaxonomyID: shirts, PropertyID: size, ScaleID: inches, Name: "Size"},
		{TaxonomyID: shirts, PropertyID: size, ScaleID: letters, Name: "Size", SuggestedValues: []string{"S", "M", "L"}},
	}
}

func TestSnapshot_IsValidProperty(t *testing.T) {
	snap := NewSnapshot(fixtures())

	tests := []struct {
		name     string
		taxonomy int64
		property int64
		scale    int64
		want     bool
	}{
		{"Declared Without Scale", mugs, color, 0, true},
		{"Unexpected Scale", mugs, color, inches, false},
		{"Declared Scale", shirts, size, letters, true},
		{"Missing Scale", shirts, size, 0, false},
		{"Other Category", mugs, size, inches, false},
		{"Custom Primary", mugs, inventory.CustomPropertyPrimary, 0, true},
		{"Custom Secondary", 99, inventory.CustomPropertySecondary, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snap.IsValidProperty(tt.taxonomy, tt.property, tt.scale))
		})
	}
}

func TestSnapshot_SuggestedOptions(t *testing.T) {
	snap := NewSnapshot(fixtures())

	assert.Equal(t, []string{"Red", "Blue"}, snap.SuggestedOptions(mugs, color))
	assert.Equal(t, []string{"S", "M", "L"}, snap.SuggestedOptions(shirts, size))
	assert.Nil(t, snap.SuggestedOptions(mugs, size))

	// Callers get a copy.
	opts := snap.SuggestedOptions(mugs, color)
	opts[0] = "Green"
	assert.Equal(t, "Red", snap.SuggestedOptions(mugs, color)[0])
}

func TestSnapshot_AllowsProperty(t *testing.T) {
	snap := NewSnapshot(fixtures())

	assert.True(t, snap.AllowsProperty(shirts, size))
	assert.False(t, snap.AllowsProperty(mugs, size))
	assert.Equal(t, 3, snap.Len())
}
