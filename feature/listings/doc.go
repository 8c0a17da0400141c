// Package listings stores marketplace listings.
//
// A Product keeps its variation definition and offering grid as JSON columns
// next to the listing-level fields. Ids created while editing are negative
// (see inventory.NegativeSequence); Repository.Save turns them into positive
// ids before writing.
package listings
