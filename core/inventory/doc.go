// Package inventory implements the variation/offering reconciliation engine
// for marketplace listings.
//
// A listing may declare up to two variations (for example Color and Size),
// each with an ordered list of options. The sellable combinations of those
// options are offerings, and every offering carries its own price, quantity,
// SKU and visibility.
//
// # Components
//
//   - Combinations: the ordered Cartesian product of option lists.
//   - Rebuild: recomputes a complete offering grid from a new variation
//     definition, carrying values over from the previous grid according to
//     which variations influence each property.
//   - Collapse: folds a multi-offering grid back into scalar listing values
//     when all variations are removed (sum, minimum, uniqueness).
//   - Validate: structural and business limits for variations and offerings.
//
// Everything in this package is pure: no I/O, no shared state. Identifiers for
// objects created during a rebuild come from an injected IDGenerator.
//
// # Usage
//
//	ids := inventory.NewNegativeSequence()
//	next, scalars := inventory.Rebuild(prev, scalars, variations, ids)
//	result, err := inventory.Validate(&next, taxonomyID, catalog, inventory.ValidationOptions{})
package inventory
