package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogFunc adapts a function to PropertyCatalog.
type catalogFunc func(taxonomyID, propertyID, scaleID int64) bool

func (f catalogFunc) IsValidProperty(taxonomyID, propertyID, scaleID int64) bool {
	return f(taxonomyID, propertyID, scaleID)
}

func optionIDs(start int64, n int) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = start + int64(i)
	}
	return ids
}

func allInfluences(v Variation) Variation {
	v.InfluencesPrice = true
	v.InfluencesQuantity = true
	v.InfluencesSku = true
	return v
}

func TestValidate_NilInventory(t *testing.T) {
	_, err := Validate(nil, 1, nil, ValidationOptions{})
	assert.ErrorIs(t, err, ErrNilInventory)
}

func TestValidate_CombinationLimit(t *testing.T) {
	tests := []struct {
		name      string
		first     int
		second    int
		influence bool
		valid     bool
	}{
		{name: "20x20 with every influence", first: 20, second: 20, influence: true, valid: true},
		{name: "20x21 with every influence", first: 20, second: 21, influence: true, valid: false},
		{name: "20x21 with shared values", first: 20, second: 21, influence: false, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := newVariation(1, colorProperty, optionIDs(1000, tt.first)...)
			size := newVariation(2, sizeProperty, optionIDs(2000, tt.second)...)
			if tt.influence {
				color, size = allInfluences(color), allInfluences(size)
			}
			inv := build([]Variation{color, size}, Scalars{Price: "5.00", Quantity: "3"})

			result, err := Validate(&inv, 1, nil, ValidationOptions{})
			require.NoError(t, err)

			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, MsgTooManyCombinations, result.Data.Status)
				assert.Contains(t, result.Data.Variations, MsgTooManyCombinations)
			}
		})
	}
}

func TestValidate_OfferingErrors(t *testing.T) {
	color := newVariation(1, colorProperty, 11, 12)
	color.InfluencesPrice = true
	inv := build([]Variation{color}, Scalars{Price: "5.00", Quantity: "3"})
	offeringFor(inv, 11).Price = "-5"

	result, err := Validate(&inv, 1, nil, ValidationOptions{})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Data.Offerings, 2)
	assert.Equal(t, MsgPositivePrice, result.Data.Offerings[0].Price)
	assert.True(t, result.Data.Offerings[1].IsZero())
}

func TestValidate_DuplicateCombination(t *testing.T) {
	color := newVariation(1, colorProperty, 11, 12)
	inv := build([]Variation{color}, Scalars{Price: "5.00", Quantity: "3"})
	inv.Offerings[1].VariationOptions = inv.Offerings[0].VariationOptions

	result, err := Validate(&inv, 1, nil, ValidationOptions{})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Empty(t, result.Data.Offerings[0].Combination)
	assert.Equal(t, MsgDuplicateCombination, result.Data.Offerings[1].Combination)
}

func TestValidate_ValidInventory(t *testing.T) {
	color := newVariation(1, colorProperty, 11, 12)
	inv := build([]Variation{color}, Scalars{Price: "5.00", Quantity: "3", Sku: "MUG"})

	result, err := Validate(&inv, 1, nil, ValidationOptions{})
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, Report{}, result.Data)
}

func TestValidateVariations(t *testing.T) {
	valid := newVariation(1, colorProperty, 11, 12)

	tests := []struct {
		name    string
		vars    func() []Variation
		catalog PropertyCatalog
		want    string
	}{
		{
			name: "too many variations",
			vars: func() []Variation {
				return []Variation{valid, newVariation(2, sizeProperty, 21), newVariation(3, 300, 31)}
			},
			want: MsgTooManyVariations,
		},
		{
			name: "duplicate property",
			vars: func() []Variation {
				return []Variation{valid, newVariation(2, colorProperty, 21)}
			},
			want: MsgDuplicateProperty,
		},
		{
			name: "property not in category",
			vars: func() []Variation { return []Variation{valid} },
			catalog: catalogFunc(func(_, propertyID, _ int64) bool {
				return propertyID != colorProperty
			}),
			want: MsgInvalidProperty,
		},
		{
			name: "no options",
			vars: func() []Variation { return []Variation{newVariation(1, colorProperty)} },
			want: MsgNoOptions,
		},
		{
			name: "too many options",
			vars: func() []Variation {
				v := newVariation(1, colorProperty)
				for i := 0; i <= MaximumNumberOfOptions; i++ {
					v.Options = append(v.Options, Option{ID: int64(100 + i), Value: "Shade " + strings.Repeat("x", i%10) + string(rune('a'+i%26))})
				}
				return []Variation{v}
			},
			want: MsgTooManyOptions,
		},
		{
			name: "duplicate option ignores case",
			vars: func() []Variation {
				v := newVariation(1, colorProperty, 11, 12)
				v.Options[0].Value = "Red"
				v.Options[1].Value = "red"
				return []Variation{v}
			},
			want: MsgDuplicateOption,
		},
		{
			name: "option too long",
			vars: func() []Variation {
				v := newVariation(1, colorProperty, 11)
				v.Options[0].Value = strings.Repeat("a", MaximumOptionNameLength+1)
				return []Variation{v}
			},
			want: "Name must be 20 characters or less",
		},
		{
			name: "option with forbidden character",
			vars: func() []Variation {
				v := newVariation(1, colorProperty, 11)
				v.Options[0].Value = "Big $"
				return []Variation{v}
			},
			want: MsgForbiddenCharacters,
		},
		{
			name: "custom property name too long",
			vars: func() []Variation {
				v := newVariation(1, CustomPropertyPrimary, 11)
				v.FormattedName = strings.Repeat("n", MaximumCustomPropertyNameLength+1)
				return []Variation{v}
			},
			want: "Name must be 45 characters or less",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := ValidateVariations(tt.vars(), 1, tt.catalog)
			require.NotEmpty(t, problems)

			found := false
			for _, p := range problems {
				if strings.HasPrefix(p, tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected %q in %v", tt.want, problems)
		})
	}
}

func TestValidateVariations_CustomPropertySkipsCatalog(t *testing.T) {
	v := newVariation(1, CustomPropertySecondary, 11)
	never := catalogFunc(func(_, _, _ int64) bool { return false })

	assert.Empty(t, ValidateVariations([]Variation{v}, 1, never))
}

func TestValidateOfferings_Status(t *testing.T) {
	tests := []struct {
		name       string
		offerings  []Offering
		opts       ValidationOptions
		wantStatus string
	}{
		{
			name: "nothing visible",
			offerings: []Offering{
				{Price: "1.00", Quantity: "1", Visibility: false},
			},
			wantStatus: MsgNoVisibleOffering,
		},
		{
			name: "no stock",
			offerings: []Offering{
				{Price: "1.00", Quantity: "0", Visibility: true},
				{Price: "1.00", Quantity: "0", Visibility: false},
			},
			wantStatus: MsgNoOfferingWithStock,
		},
		{
			name: "stock only on a hidden offering",
			offerings: []Offering{
				{Price: "1.00", Quantity: "0", Visibility: true},
				{Price: "1.00", Quantity: "5", Visibility: false},
			},
			wantStatus: "",
		},
		{
			name: "nothing visible and no stock",
			offerings: []Offering{
				{Price: "1.00", Quantity: "0", Visibility: false},
			},
			wantStatus: MsgNoVisibleOffering + StatusSeparator + MsgNoOfferingWithStock,
		},
		{
			name: "no stock allowed",
			offerings: []Offering{
				{Price: "1.00", Quantity: "0", Visibility: true},
			},
			opts:       ValidationOptions{AllowNoStock: true},
			wantStatus: "",
		},
		{
			name: "stocked",
			offerings: []Offering{
				{Price: "1.00", Quantity: "2", Visibility: true},
			},
			wantStatus: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, status := ValidateOfferings(tt.offerings, tt.opts)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestValidateOfferings_Values(t *testing.T) {
	tests := []struct {
		name     string
		offering Offering
		opts     ValidationOptions
		want     OfferingError
	}{
		{name: "valid", offering: Offering{Price: "10.50", Quantity: "5"}},
		{name: "zero price", offering: Offering{Price: "0", Quantity: "5"}, want: OfferingError{Price: MsgPositivePrice}},
		{name: "price not a number", offering: Offering{Price: "abc", Quantity: "5"}, want: OfferingError{Price: MsgPositivePrice}},
		{name: "price too high", offering: Offering{Price: "250000.01", Quantity: "5"}, want: OfferingError{Price: MsgPriceTooHigh}},
		{name: "price at limit", offering: Offering{Price: "250000", Quantity: "5"}},
		{name: "quantity too high", offering: Offering{Price: "1", Quantity: "1000"}, want: OfferingError{Quantity: MsgQuantityRange}},
		{name: "negative quantity", offering: Offering{Price: "1", Quantity: "-1"}, want: OfferingError{Quantity: MsgQuantityRange}},
		{name: "fractional quantity", offering: Offering{Price: "1", Quantity: "1.5"}, want: OfferingError{Quantity: MsgQuantityRange}},
		{name: "empty values rejected", offering: Offering{}, want: OfferingError{Price: MsgPositivePrice, Quantity: MsgQuantityRange}},
		{name: "empty values ignored", offering: Offering{}, opts: ValidationOptions{IgnoreEmpty: true}},
		{name: "sku too long", offering: Offering{Price: "1", Quantity: "1", Sku: strings.Repeat("s", 33)}, want: OfferingError{Sku: MsgSkuTooLong}},
		{name: "sku with caret", offering: Offering{Price: "1", Quantity: "1", Sku: "A^B"}, want: OfferingError{Sku: MsgForbiddenCharacters}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.offering.Visibility = true
			errs, _ := ValidateOfferings([]Offering{tt.offering}, tt.opts)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[0])
		})
	}
}
