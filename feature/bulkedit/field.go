package bulkedit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"bulk-editor/core/inventory"
	"bulk-editor/core/taxonomy"
	"bulk-editor/feature/listings"
)

// Field is one editable listing field. Apply and Validate are pure: Apply
// never modifies its input and a nil payload returns the input unchanged.
type Field interface {
	// Name is the operation type prefix, e.g. "title".
	Name() string
	// Verbs lists the supported operation verbs.
	Verbs() []string
	// Decode parses the value of a verb. Malformed values decode to nil.
	Decode(verb string, raw json.RawMessage) Payload
	// Apply returns an updated copy of p. Unless suppressPreview is set, the
	// copy carries a preview of the change.
	Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product
	// Validate checks the field on p.
	Validate(p *listings.Product) (inventory.Result, error)
}

// Env holds the collaborators fields need.
type Env struct {
	// Catalog answers category questions; nil skips taxonomy checks.
	Catalog taxonomy.Catalog
	// IDs issues ids for new variations, options and offerings.
	IDs inventory.IDGenerator
	// Inventory relaxes offering validation.
	Inventory inventory.ValidationOptions
}

// Step is a decoded operation ready to apply.
type Step struct {
	Field   Field
	Verb    string
	Payload Payload
}

// Registry maps operation types to fields.
type Registry struct {
	env    Env
	fields map[string]Field
}

// NewRegistry creates a registry with every listing field.
func NewRegistry(env Env) *Registry {
	if env.IDs == nil {
		env.IDs = inventory.NewNegativeSequence()
	}
	r := &Registry{env: env, fields: make(map[string]Field)}
	for _, f := range []Field{
		newTextField("title", listings.MaximumTitleLength, true, titleAccess),
		newTextField("description", 0, true, descriptionAccess),
		newListField("tags", listings.MaximumTags, listings.MaximumTagLength, tagsAccess),
		newListField("materials", listings.MaximumMaterials, listings.MaximumMaterialLength, materialsAccess),
		newImagesField(),
		&sectionField{},
		newChoiceField("occasion", occasionAccess),
		newChoiceField("recipient", recipientAccess),
		&taxonomyField{env: &r.env},
		&attributeField{env: &r.env},
		&priceField{env: &r.env},
		&quantityField{env: &r.env},
		&skuField{env: &r.env},
		&variationsField{env: &r.env},
	} {
		r.Register(f)
	}
	return r
}

// refresher is implemented by catalogs that cache database state, such as
// taxonomy.Live.
type refresher interface {
	Refresh(ctx context.Context) error
}

// Refresh reloads the catalog when it supports reloading. It must not run
// inside a product transaction. A failed reload keeps the previous catalog,
// so the error is informational.
func (r *Registry) Refresh(ctx context.Context) error {
	if c, ok := r.env.Catalog.(refresher); ok {
		return c.Refresh(ctx)
	}
	return nil
}

// Register adds or replaces a field.
func (r *Registry) Register(f Field) {
	r.fields[f.Name()] = f
}

// Field returns the field with name.
func (r *Registry) Field(name string) (Field, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// Types lists every supported operation type, sorted.
func (r *Registry) Types() []string {
	var types []string
	for name, f := range r.fields {
		for _, verb := range f.Verbs() {
			types = append(types, name+"."+verb)
		}
	}
	sort.Strings(types)
	return types
}

// Decode resolves the field and verb of op and decodes its value. A
// malformed value yields a Step with a nil payload.
func (r *Registry) Decode(op Operation) (Step, error) {
	name, verb, err := op.Split()
	if err != nil {
		return Step{}, err
	}
	f, ok := r.fields[name]
	if !ok || !hasVerb(f, verb) {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op.Type)
	}
	return Step{Field: f, Verb: verb, Payload: f.Decode(verb, op.Value)}, nil
}

// TryApply decodes op and applies it to p. See TryApply.
func (r *Registry) TryApply(p *listings.Product, op Operation, suppressPreview bool) (*listings.Product, error) {
	step, err := r.Decode(op)
	if err != nil {
		return p, err
	}
	return TryApply(p, step, suppressPreview)
}

// TryApply applies step to p and keeps the result only when the field still
// validates. On any error p is returned unchanged; a failed validation is
// reported as *RejectedError.
func TryApply(p *listings.Product, step Step, suppressPreview bool) (*listings.Product, error) {
	if p == nil {
		return nil, ErrNilProduct
	}
	next := step.Field.Apply(p, step.Verb, step.Payload, suppressPreview)
	result, err := step.Field.Validate(next)
	if err != nil {
		return p, err
	}
	if !result.Valid {
		return p, &RejectedError{Operation: step.Field.Name() + "." + step.Verb, Result: result}
	}
	return next, nil
}

// IsRejected reports whether err is a validation rejection.
func IsRejected(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}

func hasVerb(f Field, verb string) bool {
	for _, v := range f.Verbs() {
		if v == verb {
			return true
		}
	}
	return false
}
