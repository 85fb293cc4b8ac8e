package filtering

// Intersect returns the ids present in every list, each once, in order of first appearance in
// the first list. With no lists it returns an empty result.
func Intersect(lists ...[]ID) []ID {
	if len(lists) == 0 {
		return []ID{}
	}
	counts := make(map[ID]int, len(lists[0]))
	for i, list := range lists {
		for _, id := range list {
			// count each id at most once per list
			if counts[id] == i {
				counts[id] = i + 1
			}
		}
	}
	out := make([]ID, 0, len(lists[0]))
	for _, id := range lists[0] {
		if counts[id] == len(lists) {
			out = append(out, id)
			counts[id] = -1
		}
	}
	return out
}

// Dedup keeps the first occurrence of every id.
func Dedup(ids []ID) []ID {
	seen := make(map[ID]struct{}, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
