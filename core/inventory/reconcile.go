package inventory

// Mode describes how a property is distributed over the offering grid.
type Mode int

const (
	// ModeGlobal means one value is shared by every offering.
	ModeGlobal Mode = iota
	// ModeSingle means the value varies with the options of one variation.
	ModeSingle
	// ModeAll means the value varies with every combination of two variations.
	ModeAll
)

// InfluenceMode classifies p for vars. For ModeSingle the index of the
// influencing variation is returned as well.
func InfluenceMode(vars []Variation, p Property) (Mode, int) {
	count, slot := 0, -1
	for i, v := range vars {
		if v.Influences(p) {
			count++
			if slot < 0 {
				slot = i
			}
		}
	}
	switch {
	case count == 0:
		return ModeGlobal, -1
	case count == 1:
		return ModeSingle, slot
	default:
		return ModeAll, -1
	}
}

// Rebuild computes the complete inventory for the variation definition next,
// taking values from prev. scalars are the listing-level values used when the
// listing has no variations.
//
// prev is never modified. Offerings whose combination is unchanged keep their
// id; everything else (including variations and options without an id) gets
// one from ids. When next is empty the grid collapses into one offering and
// the collapsed values are returned as the new scalars.
//
// A definition beyond WithinGridLimits is not expanded: it is returned with
// no offerings and untouched scalars so that validation can reject it.
func Rebuild(prev Inventory, scalars Scalars, next []Variation, ids IDGenerator) (Inventory, Scalars) {
	if !WithinGridLimits(next) {
		vars := make([]Variation, len(next))
		copy(vars, next)
		return Inventory{Variations: vars, Offerings: []Offering{}}, scalars
	}

	vars := assignIDs(next, ids)

	if len(vars) == 0 {
		return collapseInventory(prev, scalars, ids)
	}

	dims := make([][]int64, len(vars))
	for i, v := range vars {
		dims[i] = make([]int64, 0, len(v.Options))
		for _, o := range v.Options {
			dims[i] = append(dims[i], o.ID)
		}
	}

	prevIDs := make(map[string]int64, len(prev.Offerings))
	for _, o := range prev.Offerings {
		if key, ok := combinationKey(vars, o.VariationOptions); ok && len(o.VariationOptions) == len(vars) {
			if _, seen := prevIDs[key]; !seen {
				prevIDs[key] = o.ID
			}
		}
	}

	combos := Combinations(dims)
	offerings := make([]Offering, len(combos))
	for i, combo := range combos {
		refs := make([]OptionRef, len(combo))
		for j, optionID := range combo {
			refs[j] = OptionRef{VariationID: vars[j].ID, OptionID: optionID}
		}
		offering := Offering{VariationOptions: refs, Visibility: true}
		key, _ := combinationKey(vars, refs)
		if id, ok := prevIDs[key]; ok && id != 0 {
			offering.ID = id
		} else {
			offering.ID = ids.Next()
		}
		offerings[i] = offering
	}

	for _, p := range InfluenceProperties {
		reconcileProperty(p, vars, offerings, prev, scalars)
	}
	reconcileVisibility(vars, offerings, prev)

	return Inventory{Variations: vars, Offerings: offerings}, scalars
}

// assignIDs copies vars, giving every variation and option without an id a
// fresh one.
func assignIDs(vars []Variation, ids IDGenerator) []Variation {
	out := make([]Variation, len(vars))
	for i, v := range vars {
		if v.ID == 0 {
			v.ID = ids.Next()
		}
		options := make([]Option, len(v.Options))
		for j, o := range v.Options {
			if o.ID == 0 {
				o.ID = ids.Next()
			}
			options[j] = o
		}
		v.Options = options
		out[i] = v
	}
	return out
}

// collapseInventory produces the single synthetic offering of a listing
// without variations.
func collapseInventory(prev Inventory, scalars Scalars, ids IDGenerator) (Inventory, Scalars) {
	if len(prev.Variations) == 0 {
		for _, o := range prev.Offerings {
			if len(o.VariationOptions) == 0 {
				o.VariationOptions = []OptionRef{}
				return Inventory{Variations: []Variation{}, Offerings: []Offering{o}}, scalars
			}
		}
	}

	collapsed := Collapse(prev, scalars)
	offering := Offering{
		ID:               ids.Next(),
		VariationOptions: []OptionRef{},
		Price:            collapsed.Price,
		Quantity:         collapsed.Quantity,
		Sku:              collapsed.Sku,
		Visibility:       true,
	}
	return Inventory{Variations: []Variation{}, Offerings: []Offering{offering}}, collapsed
}

// reconcileProperty fills p on offerings according to how vars and the
// previous variations distribute it.
func reconcileProperty(p Property, vars []Variation, offerings []Offering, prev Inventory, scalars Scalars) {
	nextMode, slot := InfluenceMode(vars, p)
	prevMode, _ := InfluenceMode(prev.Variations, p)

	global := firstValue(prev.Offerings, p)
	if global == "" {
		global = scalars.Value(p)
	}

	// A property that was shared keeps its value for options that were never
	// priced individually.
	fallback := ""
	if prevMode == ModeGlobal {
		fallback = global
	}

	switch {
	case nextMode == ModeGlobal:
		for i := range offerings {
			offerings[i].SetValue(p, global)
		}

	case nextMode == ModeAll || prevMode == ModeAll:
		lookup := make(map[string]string, len(prev.Offerings))
		for _, o := range prev.Offerings {
			key, ok := combinationKey(vars, o.VariationOptions)
			if !ok {
				continue
			}
			if _, seen := lookup[key]; !seen {
				lookup[key] = o.Value(p)
			}
		}
		for i := range offerings {
			key, _ := combinationKey(vars, offerings[i].VariationOptions)
			if value, ok := lookup[key]; ok {
				offerings[i].SetValue(p, value)
			} else {
				offerings[i].SetValue(p, fallback)
			}
		}

	default:
		variationID := vars[slot].ID
		lookup := make(map[int64]string)
		for _, o := range prev.Offerings {
			optionID, ok := o.OptionFor(variationID)
			if !ok {
				continue
			}
			if _, seen := lookup[optionID]; !seen {
				lookup[optionID] = o.Value(p)
			}
		}
		for i := range offerings {
			optionID, _ := offerings[i].OptionFor(variationID)
			if value, ok := lookup[optionID]; ok {
				offerings[i].SetValue(p, value)
			} else {
				offerings[i].SetValue(p, fallback)
			}
		}
	}
}

// reconcileVisibility keeps hidden combinations hidden.
//
// When any property is in ModeAll the grid is edited as a whole and
// visibility follows the exact combination. Otherwise visibility is edited as
// independent per-variation lists: an option pair stays visible if any
// previous offering with that pair was visible.
func reconcileVisibility(vars []Variation, offerings []Offering, prev Inventory) {
	combined := false
	for _, p := range InfluenceProperties {
		if mode, _ := InfluenceMode(vars, p); mode == ModeAll {
			combined = true
			break
		}
	}

	if combined {
		lookup := make(map[string]bool, len(prev.Offerings))
		for _, o := range prev.Offerings {
			key, ok := combinationKey(vars, o.VariationOptions)
			if !ok {
				continue
			}
			if _, seen := lookup[key]; !seen {
				lookup[key] = o.Visibility
			}
		}
		for i := range offerings {
			key, _ := combinationKey(vars, offerings[i].VariationOptions)
			if visible, ok := lookup[key]; ok {
				offerings[i].Visibility = visible
			} else {
				offerings[i].Visibility = true
			}
		}
		return
	}

	marks := make(map[OptionRef]bool)
	for _, o := range prev.Offerings {
		for _, ref := range o.VariationOptions {
			if o.Visibility {
				marks[ref] = true
			} else if _, seen := marks[ref]; !seen {
				marks[ref] = false
			}
		}
	}
	for i := range offerings {
		visible := true
		for _, ref := range offerings[i].VariationOptions {
			if mark, ok := marks[ref]; ok && !mark {
				visible = false
				break
			}
		}
		offerings[i].Visibility = visible
	}
}

// firstValue returns the first non-empty value of p.
func firstValue(offerings []Offering, p Property) string {
	for _, o := range offerings {
		if v := o.Value(p); v != "" {
			return v
		}
	}
	return ""
}
