package taxonomy

import (
	"bulk-editor/core/inventory"
)

// Catalog answers category questions for listings. Implementations are pure
// lookups and safe for concurrent use.
type Catalog interface {
	inventory.PropertyCatalog
	// SuggestedOptions returns the predefined option values of a property in
	// a category, or nil when options are free text.
	SuggestedOptions(taxonomyID, propertyID int64) []string
	// AllowsProperty reports whether property can be set as an attribute on
	// listings of the category.
	AllowsProperty(taxonomyID, propertyID int64) bool
}

type propertyKey struct {
	taxonomyID int64
	propertyID int64
}

type propertyEntry struct {
	scales    map[int64]struct{}
	suggested []string
}

// Snapshot is an immutable in-memory Catalog.
type Snapshot struct {
	properties map[propertyKey]*propertyEntry
}

// NewSnapshot indexes props. Several entries for the same category and
// property declare the scales it may be used with.
func NewSnapshot(props []Property) *Snapshot {
	s := &Snapshot{properties: make(map[propertyKey]*propertyEntry, len(props))}
	for _, p := range props {
		key := propertyKey{taxonomyID: p.TaxonomyID, propertyID: p.PropertyID}
		entry, ok := s.properties[key]
		if !ok {
			entry = &propertyEntry{scales: make(map[int64]struct{})}
			s.properties[key] = entry
		}
		if p.ScaleID != 0 {
			entry.scales[p.ScaleID] = struct{}{}
		}
		entry.suggested = appendUnique(entry.suggested, p.SuggestedValues...)
	}
	return s
}

// IsValidProperty reports whether the property and scale may be used as a
// variation in the category. Custom properties are valid everywhere. A
// property declared without scales only accepts scale 0.
func (s *Snapshot) IsValidProperty(taxonomyID, propertyID, scaleID int64) bool {
	if isCustom(propertyID) {
		return true
	}
	entry, ok := s.properties[propertyKey{taxonomyID: taxonomyID, propertyID: propertyID}]
	if !ok {
		return false
	}
	if len(entry.scales) == 0 {
		return scaleID == 0
	}
	_, ok = entry.scales[scaleID]
	return ok
}

// SuggestedOptions returns a copy of the predefined values.
func (s *Snapshot) SuggestedOptions(taxonomyID, propertyID int64) []string {
	entry, ok := s.properties[propertyKey{taxonomyID: taxonomyID, propertyID: propertyID}]
	if !ok || len(entry.suggested) == 0 {
		return nil
	}
	return append([]string(nil), entry.suggested...)
}

// AllowsProperty reports whether the category declares the property.
func (s *Snapshot) AllowsProperty(taxonomyID, propertyID int64) bool {
	_, ok := s.properties[propertyKey{taxonomyID: taxonomyID, propertyID: propertyID}]
	return ok
}

// Len is the number of (category, property) pairs.
func (s *Snapshot) Len() int {
	return len(s.properties)
}

func isCustom(propertyID int64) bool {
	return propertyID == inventory.CustomPropertyPrimary || propertyID == inventory.CustomPropertySecondary
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		dup := false
		for _, d := range dst {
			if d == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}
