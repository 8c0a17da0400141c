package inventory

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"bulk-editor/core/utils"

	"github.com/shopspring/decimal"
)

// ErrNilInventory is returned when validation is asked to check nothing.
// It signals a caller bug rather than bad seller input.
var ErrNilInventory = errors.New("inventory: nil inventory")

// Validation messages.
const (
	MsgTooManyVariations    = "A listing can have at most 2 variations"
	MsgDuplicateProperty    = "Variations must use different properties"
	MsgInvalidProperty      = "Property is not available for this category"
	MsgNoOptions            = "Add at least one option"
	MsgTooManyOptions       = "A variation can have at most 70 options"
	MsgDuplicateOption      = "Option values must be unique"
	MsgTooManyCombinations  = "Too many combinations: at most 400 are allowed when both variations set price, quantity and SKU"
	MsgDuplicateCombination = "Duplicate combination"
	MsgPositivePrice        = "Must be positive number"
	MsgPriceTooHigh         = "Must be 250000 or less"
	MsgQuantityRange        = "Must be a whole number between 0 and 999"
	MsgSkuTooLong           = "Must be 32 characters or less"
	MsgForbiddenCharacters  = "Cannot contain $, ^ or ` characters"
	MsgNoVisibleOffering    = "At least one offering must be visible"
	MsgNoOfferingWithStock  = "At least one offering must have quantity greater than 0"
)

// StatusSeparator joins listing-wide messages in Report.Status.
const StatusSeparator = "; "

const (
	forbiddenCharacters      = "^$`"
	propertyNameLengthFormat = "Name must be %d characters or less"
)

// PropertyCatalog answers taxonomy questions during validation.
type PropertyCatalog interface {
	// IsValidProperty reports whether property with scale may be used as a
	// variation of listings in category taxonomyID.
	IsValidProperty(taxonomyID, propertyID, scaleID int64) bool
}

// ValidationOptions relaxes checks for bulk edits.
type ValidationOptions struct {
	// IgnoreEmpty skips empty prices and quantities.
	IgnoreEmpty bool
	// AllowNoStock accepts grids where every quantity is 0.
	AllowNoStock bool
}

// OfferingError holds the problems of one offering; empty fields are fine.
type OfferingError struct {
	Combination string `json:"combination,omitempty"`
	Price       string `json:"price,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	Sku         string `json:"sku,omitempty"`
}

// IsZero reports whether the offering has no errors.
func (e OfferingError) IsZero() bool {
	return e == OfferingError{}
}

// Report is the structured payload of a validation result.
type Report struct {
	// Status is a listing-wide message.
	Status string `json:"status,omitempty"`
	// Variations lists problems with the variation definition.
	Variations []string `json:"variations,omitempty"`
	// Offerings is index-aligned with the validated offerings.
	Offerings []OfferingError `json:"offerings,omitempty"`
	// Fields maps listing field names to problems.
	Fields map[string]string `json:"fields,omitempty"`
}

// Result is the outcome of validating a change.
type Result struct {
	Valid bool   `json:"valid"`
	Data  Report `json:"data"`
}

// OK returns a passing result.
func OK() Result {
	return Result{Valid: true}
}

// Invalid returns a failing result with a status message.
func Invalid(status string) Result {
	return Result{Valid: false, Data: Report{Status: status}}
}

// FieldError returns a failing result for a single listing field.
func FieldError(field, message string) Result {
	return Result{Valid: false, Data: Report{Fields: map[string]string{field: message}}}
}

// Validate checks the variation definition and offerings of inv.
// catalog may be nil, in which case taxonomy compatibility is not checked.
// Business rule failures are reported in the result, never as an error.
func Validate(inv *Inventory, taxonomyID int64, catalog PropertyCatalog, opts ValidationOptions) (Result, error) {
	if inv == nil {
		return Result{}, ErrNilInventory
	}

	report := Report{}
	report.Variations = ValidateVariations(inv.Variations, taxonomyID, catalog)
	offerings, status := ValidateOfferings(inv.Offerings, opts)

	for _, e := range offerings {
		if !e.IsZero() {
			report.Offerings = offerings
			break
		}
	}
	for _, msg := range report.Variations {
		if msg == MsgTooManyCombinations {
			status = joinStatus(MsgTooManyCombinations, status)
		}
	}
	report.Status = status

	valid := len(report.Variations) == 0 && report.Offerings == nil && report.Status == ""
	return Result{Valid: valid, Data: report}, nil
}

// ValidateVariations returns the problems of a variation definition.
func ValidateVariations(vars []Variation, taxonomyID int64, catalog PropertyCatalog) []string {
	var problems []string

	if len(vars) > MaximumVariations {
		problems = append(problems, MsgTooManyVariations)
	}

	properties := make(map[int64]struct{}, len(vars))
	for _, v := range vars {
		if _, dup := properties[v.PropertyID]; dup {
			problems = append(problems, MsgDuplicateProperty)
		}
		properties[v.PropertyID] = struct{}{}

		if catalog != nil && !v.IsCustom() && !catalog.IsValidProperty(taxonomyID, v.PropertyID, v.ScaleID) {
			problems = append(problems, fmt.Sprintf("%s: %d", MsgInvalidProperty, v.PropertyID))
		}

		if v.IsCustom() {
			if utf8.RuneCountInString(v.FormattedName) > MaximumCustomPropertyNameLength {
				problems = append(problems, fmt.Sprintf(propertyNameLengthFormat, MaximumCustomPropertyNameLength))
			}
			if strings.ContainsAny(v.FormattedName, forbiddenCharacters) {
				problems = append(problems, MsgForbiddenCharacters)
			}
		}

		switch n := len(v.Options); {
		case n == 0:
			problems = append(problems, MsgNoOptions)
		case n > MaximumNumberOfOptions:
			problems = append(problems, MsgTooManyOptions)
		}

		values := make(map[string]struct{}, len(v.Options))
		for _, o := range v.Options {
			key := strings.ToLower(strings.TrimSpace(o.Value))
			if _, dup := values[key]; dup {
				problems = append(problems, MsgDuplicateOption)
				break
			}
			values[key] = struct{}{}
		}
		for _, o := range v.Options {
			if utf8.RuneCountInString(o.Value) > MaximumOptionNameLength {
				problems = append(problems, fmt.Sprintf(propertyNameLengthFormat, MaximumOptionNameLength))
				break
			}
			if strings.ContainsAny(o.Value, forbiddenCharacters) {
				problems = append(problems, MsgForbiddenCharacters)
				break
			}
		}
	}

	if hasAllInfluences(vars) && CombinationCount(vars) > MaximumVariationOptionCombinationCount {
		problems = append(problems, MsgTooManyCombinations)
	}

	return problems
}

func joinStatus(first, rest string) string {
	if rest == "" {
		return first
	}
	return first + StatusSeparator + rest
}

// hasAllInfluences reports whether both variations influence every property.
func hasAllInfluences(vars []Variation) bool {
	if len(vars) != 2 {
		return false
	}
	for _, v := range vars {
		for _, p := range InfluenceProperties {
			if !v.Influences(p) {
				return false
			}
		}
	}
	return true
}

// ValidateOfferings checks every offering and returns index-aligned errors
// plus a listing-wide status. Visibility and stock are checked
// independently; when both fail the messages are joined by StatusSeparator.
func ValidateOfferings(offerings []Offering, opts ValidationOptions) ([]OfferingError, string) {
	errs := make([]OfferingError, len(offerings))
	seen := make(map[string]int, len(offerings))
	anyVisible, anyStock := false, false
	maxPrice := decimal.NewFromInt(MaximumPriceValue)

	for i, o := range offerings {
		key := o.PairKey()
		if _, dup := seen[key]; dup {
			errs[i].Combination = MsgDuplicateCombination
		}
		seen[key] = i

		errs[i].Price = validatePrice(o.Price, maxPrice, opts)
		errs[i].Quantity = validateQuantity(o.Quantity, opts)
		errs[i].Sku = ValidateSku(o.Sku)

		if o.Visibility {
			anyVisible = true
		}
		if n, ok := utils.ParseQuantity(o.Quantity); ok && n > 0 {
			anyStock = true
		}
	}

	var statuses []string
	if len(offerings) > 0 && !anyVisible {
		statuses = append(statuses, MsgNoVisibleOffering)
	}
	if len(offerings) > 0 && !anyStock && !opts.AllowNoStock {
		statuses = append(statuses, MsgNoOfferingWithStock)
	}
	return errs, strings.Join(statuses, StatusSeparator)
}

func validatePrice(raw string, maxPrice decimal.Decimal, opts ValidationOptions) string {
	if strings.TrimSpace(raw) == "" && opts.IgnoreEmpty {
		return ""
	}
	d, ok := utils.ParsePrice(raw)
	if !ok || !d.IsPositive() {
		return MsgPositivePrice
	}
	if d.GreaterThan(maxPrice) {
		return MsgPriceTooHigh
	}
	return ""
}

func validateQuantity(raw string, opts ValidationOptions) string {
	if strings.TrimSpace(raw) == "" && opts.IgnoreEmpty {
		return ""
	}
	n, ok := utils.ParseQuantity(raw)
	if !ok || n < 0 || n > MaximumQuantity {
		return MsgQuantityRange
	}
	return ""
}

// ValidateSku checks a SKU and returns a message, or "" when it is fine.
func ValidateSku(sku string) string {
	if utf8.RuneCountInString(sku) > MaximumSkuLength {
		return MsgSkuTooLong
	}
	if strings.ContainsAny(sku, forbiddenCharacters) {
		return MsgForbiddenCharacters
	}
	return ""
}
