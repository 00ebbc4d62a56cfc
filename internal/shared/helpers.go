// Package shared provides common utility functions used across multiple
// packages in the portcullis codebase.
package shared

import (
	"sort"
	"strings"
)

// SortedUnique sorts names and removes duplicates, giving callers a
// deterministic iteration order.
func SortedUnique(names []string) []string {
	sort.Strings(names)
	out := names[:0]
	for i, name := range names {
		if i > 0 && names[i-1] == name {
			continue
		}
		out = append(out, name)
	}
	return out
}

// IsHousekeepingEntry reports whether a directory entry is filesystem
// metadata (e.g. .DS_Store) rather than a port folder.
func IsHousekeepingEntry(name string) bool {
	return strings.HasPrefix(name, ".")
}
