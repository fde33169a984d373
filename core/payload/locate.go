package payload

import "sort"

// maxLocateDepth bounds the recursive search. Catalog payloads are
// tree-shaped JSON, so the guard only matters for adversarially deep input.
const maxLocateDepth = 64

// FindByID performs a depth-first search over an arbitrarily nested
// structure for an object carrying both an "id" equal (by string comparison)
// to targetID and a "name" field. The first match in traversal order is
// returned. Artist page endpoints bury the artist object inside nested
// album/track module lists, which is the case this exists for.
func FindByID(v Value, targetID string) (Value, bool) {
	if targetID == "" {
		return Value{}, false
	}
	return findByID(v, targetID, 0)
}

func findByID(v Value, targetID string, depth int) (Value, bool) {
	if depth > maxLocateDepth {
		return Value{}, false
	}

	if obj, ok := v.Object(); ok {
		if v.Has("id") && v.Has("name") && v.Field("id").Str() == targetID {
			return v, true
		}
		// Object fields are visited in sorted key order so repeated searches
		// over the same payload always return the same match.
		keys := make([]string, 0, len(obj))
		for key := range obj {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if found, ok := findByID(From(obj[key]), targetID, depth+1); ok {
				return found, true
			}
		}
		return Value{}, false
	}

	if list, ok := v.Array(); ok {
		for _, child := range list {
			if found, ok := findByID(From(child), targetID, depth+1); ok {
				return found, true
			}
		}
	}
	return Value{}, false
}
