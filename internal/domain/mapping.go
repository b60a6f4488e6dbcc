package domain

import "sort"

// Mapping relates timestamps to the set of objects visible at each instant.
// Keys keep the HH:MM:SS formatting of their source file.
type Mapping map[string]ObjectSet

// Timestamps returns the mapping's keys in ascending lexical order, which
// for fixed-width HH:MM:SS keys is also chronological order.
func (m Mapping) Timestamps() []string {
	keys := make([]string, 0, len(m))
	for ts := range m {
		keys = append(keys, ts)
	}
	sort.Strings(keys)
	return keys
}

// TotalObjects counts object occurrences across all timestamps. An object
// visible at two timestamps counts twice.
func (m Mapping) TotalObjects() int {
	total := 0
	for _, s := range m {
		total += s.Len()
	}
	return total
}
