package harness

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ResultEntry is one parsed trace event from a scenario runner's stdout.
type ResultEntry struct {
	// Timestamp is the event's elapsed time since runner start.
	Timestamp time.Duration
	// Level is the upper-case event level (TRACE..ERROR).
	Level string
	// Target is the optional event target.
	Target string
	// ThreadID identifies the emitting goroutine, when tagged.
	ThreadID string
	// Fields holds the event's payload mapping.
	Fields map[string]any
}

// rawEvent mirrors the runner's wire format.
type rawEvent struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Fields    map[string]any `json:"fields"`
	Target    string         `json:"target"`
	ThreadID  string         `json:"threadId"`
}

// ParseResultEntry parses one stdout line into a ResultEntry. Lines that are
// not JSON objects are not trace events (scenarios may print anything) and
// yield (nil, false).
func ParseResultEntry(line string) (*ResultEntry, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") {
		return nil, false
	}

	var raw rawEvent
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return nil, false
	}

	micros, err := strconv.ParseInt(raw.Timestamp, 10, 64)
	if err != nil {
		return nil, false
	}

	return &ResultEntry{
		Timestamp: time.Duration(micros) * time.Microsecond,
		Level:     raw.Level,
		Target:    raw.Target,
		ThreadID:  raw.ThreadID,
		Fields:    raw.Fields,
	}, true
}

// Field returns the named entry attribute as a string for matching. The
// envelope attributes are addressed by their wire names; any other name is
// looked up in the event's fields mapping.
func (e *ResultEntry) Field(name string) (string, bool) {
	switch name {
	case "timestamp":
		return strconv.FormatInt(e.Timestamp.Microseconds(), 10), true
	case "level":
		return e.Level, true
	case "target":
		return e.Target, e.Target != ""
	case "threadId":
		return e.ThreadID, e.ThreadID != ""
	}

	value, ok := e.Fields[name]
	if !ok {
		return "", false
	}
	if s, ok := value.(string); ok {
		return s, true
	}
	return fmt.Sprintf("%v", value), true
}

// String renders the entry for harness diagnostics.
func (e *ResultEntry) String() string {
	return fmt.Sprintf("ResultEntry(timestamp=%s, level=%s, target=%s, fields=%v)",
		e.Timestamp, e.Level, e.Target, e.Fields)
}
