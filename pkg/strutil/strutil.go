package strutil

import (
	"strings"
)

// Split splits s on every literal occurrence of delim, preserving empty
// segments. Splitting the empty string yields a single empty segment, and a
// trailing delimiter produces a trailing empty segment:
//
//	Split("", ".")   == [""]
//	Split("a.", ".") == ["a", ""]
//
// This is the splitting behavior scenario path resolution depends on; do not
// substitute a variant that drops empty segments.
func Split(s, delim string) []string {
	return strings.Split(s, delim)
}

// Join concatenates parts with delim between consecutive elements.
func Join(parts []string, delim string) string {
	return strings.Join(parts, delim)
}

// Trim strips leading and trailing whitespace from s.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
