package inventory

// newVariation builds a variation whose options carry the given ids.
func newVariation(id, propertyID int64, optionIDs ...int64) Variation {
	v := Variation{ID: id, PropertyID: propertyID, FormattedName: "Property"}
	for i, optionID := range optionIDs {
		v.Options = append(v.Options, Option{
			ID:       optionID,
			Value:    "Option " + string(rune('A'+i)),
			Sequence: i,
		})
	}
	return v
}

// sequence returns a deterministic generator counting down from start.
func sequence(start int64) IDGenerator {
	next := start
	return IDFunc(func() int64 {
		id := next
		next--
		return id
	})
}

// build creates a grid for vars with every offering set from scalars.
func build(vars []Variation, scalars Scalars) Inventory {
	inv, _ := Rebuild(Inventory{}, scalars, vars, sequence(-1000))
	return inv
}

// offeringFor finds the offering with exactly the given option ids.
func offeringFor(inv Inventory, optionIDs ...int64) *Offering {
	for i := range inv.Offerings {
		o := &inv.Offerings[i]
		if len(o.VariationOptions) != len(optionIDs) {
			continue
		}
		match := true
		for j, ref := range o.VariationOptions {
			if ref.OptionID != optionIDs[j] {
				match = false
				break
			}
		}
		if match {
			return o
		}
	}
	return nil
}
