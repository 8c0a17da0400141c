package bulkedit

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"bulk-editor/core/inventory"
	"bulk-editor/feature/listings"
)

// Text verbs.
const (
	VerbSet            = "set"
	VerbAddBefore      = "addBefore"
	VerbAddAfter       = "addAfter"
	VerbFindAndReplace = "findAndReplace"
	VerbDelete         = "delete"
)

var textVerbs = []string{VerbSet, VerbAddBefore, VerbAddAfter, VerbFindAndReplace, VerbDelete}

// accessor reads and writes one string field of a product.
type accessor struct {
	get func(p *listings.Product) string
	set func(p *listings.Product, v string)
}

var (
	titleAccess = accessor{
		get: func(p *listings.Product) string { return p.Title },
		set: func(p *listings.Product, v string) { p.Title = v },
	}
	descriptionAccess = accessor{
		get: func(p *listings.Product) string { return p.Description },
		set: func(p *listings.Product, v string) { p.Description = v },
	}
	occasionAccess = accessor{
		get: func(p *listings.Product) string { return p.Occasion },
		set: func(p *listings.Product, v string) { p.Occasion = v },
	}
	recipientAccess = accessor{
		get: func(p *listings.Product) string { return p.Recipient },
		set: func(p *listings.Product, v string) { p.Recipient = v },
	}
)

// editText applies a text verb to s. ok is false for a payload the verb does
// not accept.
func editText(s, verb string, payload Payload) (string, bool) {
	switch verb {
	case VerbSet, VerbAddBefore, VerbAddAfter, VerbDelete:
		p, ok := payload.(TextPayload)
		if !ok {
			return s, false
		}
		switch verb {
		case VerbSet:
			return p.Text, true
		case VerbAddBefore:
			return p.Text + s, true
		case VerbAddAfter:
			return s + p.Text, true
		default:
			if p.Text == "" {
				return s, false
			}
			return strings.ReplaceAll(s, p.Text, ""), true
		}
	case VerbFindAndReplace:
		p, ok := payload.(FindReplacePayload)
		if !ok {
			return s, false
		}
		return strings.ReplaceAll(s, p.Find, p.Replace), true
	}
	return s, false
}

func decodeTextVerb(verb string, raw json.RawMessage) Payload {
	if verb == VerbFindAndReplace {
		return decodeFindReplace(raw)
	}
	return decodeText(raw)
}

// textField edits free text such as the title and the description.
type textField struct {
	name     string
	maxLen   int
	required bool
	access   accessor
}

func newTextField(name string, maxLen int, required bool, access accessor) *textField {
	return &textField{name: name, maxLen: maxLen, required: required, access: access}
}

func (f *textField) Name() string    { return f.name }
func (f *textField) Verbs() []string { return textVerbs }

func (f *textField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeTextVerb(verb, raw)
}

func (f *textField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	if payload == nil {
		return p
	}
	before := f.access.get(p)
	after, ok := editText(before, verb, payload)
	if !ok {
		return p
	}
	after = strings.TrimSpace(after)

	next := p.Clone()
	f.access.set(next, after)
	if !suppressPreview {
		next.SetPreview(f.name, textPreview(before, after))
	}
	return next
}

func (f *textField) Validate(p *listings.Product) (inventory.Result, error) {
	if p == nil {
		return inventory.Result{}, ErrNilProduct
	}
	v := f.access.get(p)
	if f.required && strings.TrimSpace(v) == "" {
		return inventory.FieldError(f.name, MsgRequired), nil
	}
	if f.maxLen > 0 && utf8.RuneCountInString(v) > f.maxLen {
		return inventory.FieldError(f.name, lengthMessage(f.maxLen)), nil
	}
	return inventory.OK(), nil
}

// choiceField sets an optional short value such as the occasion.
type choiceField struct {
	name   string
	access accessor
}

func newChoiceField(name string, access accessor) *choiceField {
	return &choiceField{name: name, access: access}
}

func (f *choiceField) Name() string    { return f.name }
func (f *choiceField) Verbs() []string { return []string{VerbSet} }

func (f *choiceField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeText(raw)
}

func (f *choiceField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	text, ok := payload.(TextPayload)
	if !ok || verb != VerbSet {
		return p
	}
	before := f.access.get(p)
	after := strings.TrimSpace(text.Text)

	next := p.Clone()
	f.access.set(next, after)
	if !suppressPreview {
		next.SetPreview(f.name, textPreview(before, after))
	}
	return next
}

func (f *choiceField) Validate(p *listings.Product) (inventory.Result, error) {
	if p == nil {
		return inventory.Result{}, ErrNilProduct
	}
	if utf8.RuneCountInString(f.access.get(p)) > listings.MaximumTextLength {
		return inventory.FieldError(f.name, lengthMessage(listings.MaximumTextLength)), nil
	}
	return inventory.OK(), nil
}
