package util

import "sort"

func Float64Ptr(f float64) *float64 {
	return &f
}

func StringPtr(s string) *string {
	return &s
}

// SortedMapKeys returns the map's keys sorted ascending. Handy for
// deterministic output when ranging over per-symbol results.
func SortedMapKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
