package snapshot

import (
	"slices"
	"strings"
)

// Compare orders directories before everything else, then by case-insensitive
// name. It returns 0 for names that differ only in case.
func Compare(a, b Node) int {
	if a.IsDir != b.IsDir {
		if a.IsDir {
			return -1
		}
		return 1
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// Sort orders nodes in place using Compare. The sort is stable: entries whose
// names compare equal keep the order they were enumerated in.
func Sort(nodes []Node) {
	slices.SortStableFunc(nodes, Compare)
}

// IsSorted reports whether nodes already satisfy the Compare ordering.
func IsSorted(nodes []Node) bool {
	return slices.IsSortedFunc(nodes, Compare)
}
