// Package bulkedit applies seller edits to many listings at once.
//
// An Operation names a field and a verb ("title.addBefore",
// "priceInventory.increaseByPercent") plus a value. The Registry decodes the
// value into a typed Payload and TryApply applies it, keeping the result only
// when the field still validates:
//
//	registry := bulkedit.NewRegistry(bulkedit.Env{Catalog: snapshot})
//	next, err := registry.TryApply(product, op, false)
//	if bulkedit.IsRejected(err) {
//		// product is unchanged
//	}
//
// Batches are queued through the HTTP API and processed by the Worker, which
// edits each product in its own transaction and counts progress per shop.
package bulkedit
