package lists

import "github.com/dot5enko/column-engine/schema"

// Intersect returns the positions present in both lists, in the order
// they appear in the longer one. The smaller list is hashed so the
// probe side pays a single lookup per position.
func Intersect(a, b PositionList) PositionList {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	build, probe := a, b
	if len(b) < len(a) {
		build, probe = b, a
	}

	cache := make(map[schema.TID]struct{}, len(build))
	for _, v := range build {
		cache[v] = struct{}{}
	}

	result := make(PositionList, 0, len(build))
	for _, v := range probe {
		if _, ok := cache[v]; ok {
			result = append(result, v)
		}
	}

	return result
}
