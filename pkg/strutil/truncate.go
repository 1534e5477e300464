package strutil

import (
	"strings"
)

// MinTruncateLen is the smallest usable maxLen for Truncate. Anything shorter
// leaves no room for content plus "...".
const MinTruncateLen = 4

// Truncate collapses s onto a single line and truncates it to maxLen runes,
// appending "..." when content was cut. Newlines and runs of whitespace are
// folded into single spaces so the result is safe for table cells.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
