package domain

import "strings"

// All text matching in filters, scoring and aggregation goes through these
// helpers so that every comparison shares the same case-folding semantics.

// containsFold reports whether substr occurs within s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// indexFold returns the index of the first case-insensitive occurrence of
// substr in s, or -1 if absent.
func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}

// compareFold compares two strings ignoring case, returning -1, 0 or 1.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
