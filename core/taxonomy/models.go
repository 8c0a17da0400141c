package taxonomy

// Property is one property a category declares, stored in
// taxonomy_properties. A property usable with several scales has one row per
// scale.
type Property struct {
	ID              uint     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	TaxonomyID      int64    `gorm:"column:taxonomy_id;type:bigint;not null;index:idx_taxonomy_property" json:"taxonomy_id"`
	PropertyID      int64    `gorm:"column:property_id;type:bigint;not null;index:idx_taxonomy_property" json:"property_id"`
	ScaleID         int64    `gorm:"column:scale_id;type:bigint;not null;default:0" json:"scale_id"`
	Name            string   `gorm:"column:name;type:varchar(64);not null" json:"name"`
	SuggestedValues []string `gorm:"column:suggested_values;type:text;serializer:json" json:"suggested_values,omitempty"`
}

// TableName overrides the table name used by Property.
func (Property) TableName() string {
	return "taxonomy_properties"
}
