package inventory

// Combinations returns the Cartesian product of the given option lists.
//
// Combinations are enumerated in odometer order: the last dimension varies
// fastest, so [[A B C] [X Y]] yields AX AY BX BY CX CY. Zero dimensions yield
// no combinations.
//
// When two or more dimensions are declared, an empty dimension counts as a
// single PlaceholderOptionID slot so that the grid keeps a row while the
// seller is still adding options to the second variation.
func Combinations(dimensions [][]int64) [][]int64 {
	if len(dimensions) == 0 {
		return nil
	}

	sizes := make([]int, len(dimensions))
	total := 1
	for i, dim := range dimensions {
		size := len(dim)
		if size == 0 && len(dimensions) > 1 {
			size = 1
		}
		sizes[i] = size
		total *= size
	}
	if total == 0 {
		return nil
	}

	out := make([][]int64, 0, total)
	cursor := make([]int, len(dimensions))
	for n := 0; n < total; n++ {
		combo := make([]int64, len(dimensions))
		for i, dim := range dimensions {
			if len(dim) == 0 {
				combo[i] = PlaceholderOptionID
				continue
			}
			combo[i] = dim[cursor[i]]
		}
		out = append(out, combo)

		for i := len(cursor) - 1; i >= 0; i-- {
			cursor[i]++
			if cursor[i] < sizes[i] {
				break
			}
			cursor[i] = 0
		}
	}
	return out
}

// CombinationCount is the number of offerings the variations produce. It
// follows Combinations, so an empty variation next to another one counts as
// a single placeholder slot.
func CombinationCount(vars []Variation) int {
	if len(vars) == 0 {
		return 1
	}
	total := 1
	for _, v := range vars {
		size := len(v.Options)
		if size == 0 && len(vars) > 1 {
			size = 1
		}
		total *= size
	}
	return total
}

// WithinGridLimits reports whether vars may be expanded into an offering
// grid: at most MaximumVariations variations with at most
// MaximumNumberOfOptions options each.
func WithinGridLimits(vars []Variation) bool {
	if len(vars) > MaximumVariations {
		return false
	}
	for _, v := range vars {
		if len(v.Options) > MaximumNumberOfOptions {
			return false
		}
	}
	return true
}
