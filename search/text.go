package search

import (
	"strings"

	"github.com/gharkhoj/gharkhoj/core"
)

// containsFold reports whether needle appears in haystack,
// case-insensitively.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// containsAnyFold reports whether any of the needles appears in
// haystack, case-insensitively.
func containsAnyFold(haystack string, needles []string) bool {
	for _, needle := range needles {
		if containsFold(haystack, needle) {
			return true
		}
	}
	return false
}

// fieldContainsAny reports whether the row's column holds a value
// containing any of the needles. An absent field never matches.
func fieldContainsAny(row core.Row, col string, needles []string) bool {
	v, ok := row.Get(col)
	if !ok {
		return false
	}
	return containsAnyFold(v, needles)
}
