package settings

import (
	"slices"
	"strings"
)

// Merge folds the configurations left to right and returns the combined
// value. Inputs are JSON-shaped values (map[string]any, []any, scalars) as
// produced by encoding/json or yaml decoding; they are never mutated, the
// result shares no mutable state with them.
func Merge(configs ...any) any {
	var acc any
	for _, c := range configs {
		// A variant without configuration contributes nothing; explicit
		// nulls inside objects still replace per the scalar rule.
		if c == nil {
			continue
		}
		acc = mergeValues(acc, c)
	}
	return acc
}

func mergeValues(older, newer any) any {
	if olderMap, ok := older.(map[string]any); ok {
		if newerMap, ok := newer.(map[string]any); ok {
			return mergeMaps(olderMap, newerMap)
		}
	}
	if olderArr, ok := older.([]any); ok {
		if newerArr, ok := newer.([]any); ok {
			merged := make([]any, 0, len(olderArr)+len(newerArr))
			for _, v := range olderArr {
				merged = append(merged, deepCopy(v))
			}
			for _, v := range newerArr {
				merged = append(merged, deepCopy(v))
			}
			return merged
		}
	}
	// Scalars and type mismatches: the later value replaces the earlier
	// one entirely.
	return deepCopy(newer)
}

func mergeMaps(older, newer map[string]any) map[string]any {
	merged := make(map[string]any, len(older)+len(newer))
	// Keys fold in sorted order so case-colliding keys within one input
	// ("a" and "A") resolve the same way on every run.
	for _, m := range []map[string]any{older, newer} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			// Key comparison is case-insensitive; the first-seen casing
			// is kept in the output.
			if existing, ok := findKey(merged, k); ok {
				merged[existing] = mergeValues(merged[existing], m[k])
			} else {
				merged[k] = deepCopy(m[k])
			}
		}
	}
	return merged
}

func findKey(m map[string]any, key string) (string, bool) {
	if _, ok := m[key]; ok {
		return key, true
	}
	for k := range m {
		if strings.EqualFold(k, key) {
			return k, true
		}
	}
	return "", false
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = deepCopy(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = deepCopy(elem)
		}
		return out
	default:
		return v
	}
}
