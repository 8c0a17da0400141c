package bulkedit

import (
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"bulk-editor/core/inventory"
	"bulk-editor/feature/listings"
)

// sectionField moves a listing into a shop section. Section 0 means none.
type sectionField struct{}

func (f *sectionField) Name() string    { return "section" }
func (f *sectionField) Verbs() []string { return []string{VerbSet} }

func (f *sectionField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeID(raw)
}

func (f *sectionField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	id, ok := payload.(IDPayload)
	if !ok || verb != VerbSet {
		return p
	}
	next := p.Clone()
	next.SectionID = id.ID
	if !suppressPreview {
		next.SetPreview(f.Name(), textPreview(formatID(p.SectionID), formatID(id.ID)))
	}
	return next
}

func (f *sectionField) Validate(p *listings.Product) (inventory.Result, error) {
	if p == nil {
		return inventory.Result{}, ErrNilProduct
	}
	if p.SectionID < 0 {
		return inventory.FieldError(f.Name(), MsgInvalidSection), nil
	}
	return inventory.OK(), nil
}

// taxonomyField moves a listing to another category. Attributes the new
// category does not declare are dropped.
type taxonomyField struct {
	env *Env
}

func (f *taxonomyField) Name() string    { return "taxonomy" }
func (f *taxonomyField) Verbs() []string { return []string{VerbSet} }

func (f *taxonomyField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeID(raw)
}

func (f *taxonomyField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	id, ok := payload.(IDPayload)
	if !ok || verb != VerbSet {
		return p
	}
	next := p.Clone()
	next.TaxonomyID = id.ID

	if f.env.Catalog != nil && len(next.Attributes) > 0 {
		kept := make([]listings.Attribute, 0, len(next.Attributes))
		for _, a := range next.Attributes {
			if f.env.Catalog.AllowsProperty(id.ID, a.PropertyID) {
				kept = append(kept, a)
			}
		}
		next.Attributes = kept
	}

	if !suppressPreview {
		next.SetPreview(f.Name(), textPreview(formatID(p.TaxonomyID), formatID(id.ID)))
	}
	return next
}

// Validate requires a category and variations that exist in it.
func (f *taxonomyField) Validate(p *listings.Product) (inventory.Result, error) {
	if p == nil {
		return inventory.Result{}, ErrNilProduct
	}
	if p.TaxonomyID <= 0 {
		return inventory.FieldError(f.Name(), MsgInvalidCategory), nil
	}
	if f.env.Catalog == nil {
		return inventory.OK(), nil
	}
	if problems := inventory.ValidateVariations(p.Variations, p.TaxonomyID, f.env.Catalog); len(problems) > 0 {
		return inventory.Result{Valid: false, Data: inventory.Report{Variations: problems}}, nil
	}
	return inventory.OK(), nil
}

// attributeField sets or deletes single-value category attributes.
type attributeField struct {
	env *Env
}

func (f *attributeField) Name() string    { return "attribute" }
func (f *attributeField) Verbs() []string { return []string{VerbSet, VerbDelete} }

func (f *attributeField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeAttribute(raw)
}

func (f *attributeField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	attr, ok := payload.(AttributePayload)
	if !ok {
		return p
	}

	before := attributeValue(p.Attributes, attr.PropertyID)
	next := p.Clone()
	kept := make([]listings.Attribute, 0, len(next.Attributes)+1)
	for _, a := range next.Attributes {
		if a.PropertyID != attr.PropertyID {
			kept = append(kept, a)
		}
	}

	after := ""
	switch verb {
	case VerbSet:
		kept = append(kept, listings.Attribute{PropertyID: attr.PropertyID, ScaleID: attr.ScaleID, Value: attr.Value})
		after = attr.Value
	case VerbDelete:
	default:
		return p
	}
	next.Attributes = kept

	if !suppressPreview {
		next.SetPreview(f.Name()+"."+formatID(attr.PropertyID), textPreview(before, after))
	}
	return next
}

func (f *attributeField) Validate(p *listings.Product) (inventory.Result, error) {
	if p == nil {
		return inventory.Result{}, ErrNilProduct
	}
	for _, a := range p.Attributes {
		name := f.Name() + "." + formatID(a.PropertyID)
		if a.Value == "" {
			return inventory.FieldError(name, MsgEmptyValue), nil
		}
		if utf8.RuneCountInString(a.Value) > listings.MaximumTextLength {
			return inventory.FieldError(name, lengthMessage(listings.MaximumTextLength)), nil
		}
		if f.env.Catalog != nil && !f.env.Catalog.AllowsProperty(p.TaxonomyID, a.PropertyID) {
			return inventory.FieldError(name, MsgAttributeNotFound), nil
		}
	}
	return inventory.OK(), nil
}

func attributeValue(attrs []listings.Attribute, propertyID int64) string {
	for _, a := range attrs {
		if a.PropertyID == propertyID {
			return a.Value
		}
	}
	return ""
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
