// Package taxonomy provides the category reference data used to validate
// variations and prune attributes.
//
// A Snapshot is an immutable, in-memory Catalog built from Property rows.
// The Store loads those rows with GORM and caches the resulting Snapshot for
// a configurable TTL; concurrent cache misses are collapsed into a single
// database read.
//
//	store := taxonomy.NewStore(db, cfg.Taxonomy.TTL())
//	catalog, err := store.Snapshot(ctx)
//	ok := catalog.IsValidProperty(taxonomyID, propertyID, scaleID)
//
// The custom properties (inventory.CustomPropertyPrimary and
// inventory.CustomPropertySecondary) are valid in every category.
package taxonomy
