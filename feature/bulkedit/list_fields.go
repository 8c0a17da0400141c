package bulkedit

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"bulk-editor/core/inventory"
	"bulk-editor/feature/images"
	"bulk-editor/feature/listings"
)

// List verbs.
const (
	VerbAdd = "add"
)

type listAccessor struct {
	get func(p *listings.Product) []string
	set func(p *listings.Product, v []string)
}

var (
	tagsAccess = listAccessor{
		get: func(p *listings.Product) []string { return p.Tags },
		set: func(p *listings.Product, v []string) { p.Tags = v },
	}
	materialsAccess = listAccessor{
		get: func(p *listings.Product) []string { return p.Materials },
		set: func(p *listings.Product, v []string) { p.Materials = v },
	}
	imagesAccess = listAccessor{
		get: func(p *listings.Product) []string { return p.ImageIDs },
		set: func(p *listings.Product, v []string) { p.ImageIDs = v },
	}
)

// listField edits a list of values compared case-insensitively.
type listField struct {
	name     string
	maxCount int
	maxLen   int
	access   listAccessor
	// valid, when set, must accept every value.
	valid func(string) bool
}

func newListField(name string, maxCount, maxLen int, access listAccessor) *listField {
	return &listField{name: name, maxCount: maxCount, maxLen: maxLen, access: access}
}

// newImagesField edits the image list, which only holds content ids.
func newImagesField() *listField {
	f := newListField("images", listings.MaximumImages, 0, imagesAccess)
	f.valid = images.ValidID
	return f
}

func (f *listField) Name() string { return f.name }

func (f *listField) Verbs() []string {
	return []string{VerbAdd, VerbDelete, VerbSet}
}

func (f *listField) Decode(verb string, raw json.RawMessage) Payload {
	return decodeList(raw)
}

func (f *listField) Apply(p *listings.Product, verb string, payload Payload, suppressPreview bool) *listings.Product {
	list, ok := payload.(ListPayload)
	if !ok {
		return p
	}
	before := f.access.get(p)

	var after []string
	switch verb {
	case VerbAdd:
		after = mergeValues(before, list.Values)
	case VerbDelete:
		after = removeValues(before, list.Values)
	case VerbSet:
		after = mergeValues(nil, list.Values)
	default:
		return p
	}

	next := p.Clone()
	f.access.set(next, after)
	if !suppressPreview {
		next.SetPreview(f.name, listPreview(before, after))
	}
	return next
}

func (f *listField) Validate(p *listings.Product) (inventory.Result, error) {
	if p == nil {
		return inventory.Result{}, ErrNilProduct
	}
	values := f.access.get(p)
	if f.maxCount > 0 && len(values) > f.maxCount {
		return inventory.FieldError(f.name, countMessage(f.maxCount)), nil
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return inventory.FieldError(f.name, MsgEmptyValue), nil
		}
		if f.maxLen > 0 && utf8.RuneCountInString(v) > f.maxLen {
			return inventory.FieldError(f.name, lengthMessage(f.maxLen)), nil
		}
		if f.valid != nil && !f.valid(v) {
			return inventory.FieldError(f.name, MsgInvalidImageID), nil
		}
	}
	return inventory.OK(), nil
}

// mergeValues appends the values not yet present in base.
func mergeValues(base, values []string) []string {
	out := make([]string, 0, len(base)+len(values))
	seen := make(map[string]struct{}, len(base)+len(values))
	for _, list := range [][]string{base, values} {
		for _, v := range list {
			v = strings.TrimSpace(v)
			key := strings.ToLower(v)
			if v == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// removeValues drops every value of base listed in values.
func removeValues(base, values []string) []string {
	drop := make(map[string]struct{}, len(values))
	for _, v := range values {
		drop[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	out := make([]string, 0, len(base))
	for _, v := range base {
		if _, ok := drop[strings.ToLower(strings.TrimSpace(v))]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}
