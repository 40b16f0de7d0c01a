package analyze

import "strings"

// typeContainsAny reports whether the sub-type contains any of the markers,
// case-insensitively.
func typeContainsAny(subType string, markers []string) bool {
	lower := strings.ToLower(subType)
	for _, m := range markers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// typeEqualsAny reports whether the sub-type equals any of the names,
// case-insensitively.
func typeEqualsAny(subType string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(subType, n) {
			return true
		}
	}
	return false
}
