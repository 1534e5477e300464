package harness

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// LogContainer stores and queries the trace events captured from one runner
// execution, in chronological order.
type LogContainer struct {
	entries []*ResultEntry
}

// NewLogContainer creates a container over the given entries. The slice is
// copied on construction.
func NewLogContainer(entries []*ResultEntry) *LogContainer {
	copied := make([]*ResultEntry, len(entries))
	copy(copied, entries)
	return &LogContainer{entries: copied}
}

// ParseLogContainer extracts trace events from raw runner stdout. Non-event
// lines are skipped; events are sorted into chronological order (the runner
// may interleave goroutines).
func ParseLogContainer(stdout string) *LogContainer {
	var entries []*ResultEntry
	for _, line := range strings.Split(stdout, "\n") {
		if entry, ok := ParseResultEntry(line); ok {
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp < entries[j].Timestamp
	})

	return &LogContainer{entries: entries}
}

// Len returns the number of stored entries.
func (c *LogContainer) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the stored entries.
func (c *LogContainer) Entries() []*ResultEntry {
	copied := make([]*ResultEntry, len(c.entries))
	copy(copied, c.entries)
	return copied
}

// Filter returns the entries whose field matches the pattern.
func (c *LogContainer) Filter(field, pattern string) (*LogContainer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var matched []*ResultEntry
	for _, entry := range c.entries {
		if value, ok := entry.Field(field); ok && re.MatchString(value) {
			matched = append(matched, entry)
		}
	}
	return &LogContainer{entries: matched}, nil
}

// Contains reports whether any entry's field matches the pattern.
func (c *LogContainer) Contains(field, pattern string) (bool, error) {
	matched, err := c.Filter(field, pattern)
	if err != nil {
		return false, err
	}
	return matched.Len() > 0, nil
}

// Find returns the single entry whose field matches the pattern. It returns
// nil when nothing matches and an error when the match is ambiguous.
func (c *LogContainer) Find(field, pattern string) (*ResultEntry, error) {
	matched, err := c.Filter(field, pattern)
	if err != nil {
		return nil, err
	}
	switch matched.Len() {
	case 0:
		return nil, nil
	case 1:
		return matched.entries[0], nil
	default:
		return nil, fmt.Errorf("multiple entries match field %q pattern %q", field, pattern)
	}
}

// GroupBy buckets entries by the value of the given field. Entries without
// the field are omitted.
func (c *LogContainer) GroupBy(field string) map[string]*LogContainer {
	groups := make(map[string]*LogContainer)
	for _, entry := range c.entries {
		value, ok := entry.Field(field)
		if !ok {
			continue
		}
		group, ok := groups[value]
		if !ok {
			group = &LogContainer{}
			groups[value] = group
		}
		group.entries = append(group.entries, entry)
	}
	return groups
}

// Add appends entries to the container.
func (c *LogContainer) Add(entries ...*ResultEntry) {
	c.entries = append(c.entries, entries...)
}
