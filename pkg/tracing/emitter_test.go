package tracing

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &event))
	return event
}

func TestEmitter_Emit(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, LevelTrace, false)

	e.Emit("net", LevelInfo, Fields{F("id", "worker_1"), F("value", 42)})

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)

	event := decodeLine(t, lines[0])
	assert.Equal(t, "INFO", event["level"])
	assert.Equal(t, "net", event["target"])
	assert.NotContains(t, event, "threadId")

	fields, ok := event["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "worker_1", fields["id"])
	assert.Equal(t, float64(42), fields["value"])

	// Timestamp is elapsed microseconds as a decimal string.
	ts, ok := event["timestamp"].(string)
	require.True(t, ok)
	_, err := strconv.ParseInt(ts, 10, 64)
	assert.NoError(t, err)
}

func TestEmitter_FieldOrderPreserved(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, LevelTrace, false)

	e.Emit("", LevelInfo, Fields{F("zebra", 1), F("alpha", 2), F("mid", 3)})

	line := buf.String()
	zebra := strings.Index(line, `"zebra"`)
	alpha := strings.Index(line, `"alpha"`)
	mid := strings.Index(line, `"mid"`)
	require.NotEqual(t, -1, zebra)
	assert.Less(t, zebra, alpha)
	assert.Less(t, alpha, mid)
}

func TestEmitter_OmitsEmptyTarget(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, LevelTrace, false)

	e.Emit("", LevelWarn, nil)

	event := decodeLine(t, strings.TrimSpace(buf.String()))
	assert.NotContains(t, event, "target")
	assert.Equal(t, "WARN", event["level"])

	fields, ok := event["fields"].(map[string]any)
	require.True(t, ok)
	assert.Empty(t, fields)
}

func TestEmitter_DropsBelowMinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, LevelWarn, false)

	e.Emit("", LevelTrace, nil)
	e.Emit("", LevelDebug, nil)
	e.Emit("", LevelInfo, nil)
	assert.Zero(t, buf.Len())

	e.Emit("", LevelWarn, nil)
	e.Emit("", LevelError, nil)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestEmitter_GoroutineTagging(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, LevelTrace, true)

	e.Emit("", LevelInfo, nil)

	event := decodeLine(t, strings.TrimSpace(buf.String()))
	threadID, ok := event["threadId"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(threadID, "goroutine("))
	assert.True(t, strings.HasSuffix(threadID, ")"))
}

func TestEmitter_UnmarshalableFieldDegradesToString(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, LevelTrace, false)

	e.Emit("", LevelInfo, Fields{F("fn", func() {})})

	event := decodeLine(t, strings.TrimSpace(buf.String()))
	fields := event["fields"].(map[string]any)
	_, ok := fields["fn"].(string)
	assert.True(t, ok)
}

// syncBuffer serializes writes so the test itself is race-free; the emitter
// must still deliver each record as exactly one Write.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestEmitter_ConcurrentEmitsDoNotInterleave(t *testing.T) {
	var out syncBuffer
	e := NewEmitter(&out, LevelTrace, true)

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				e.Emit("load", LevelInfo, Fields{F("worker", id), F("seq", j)})
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, goroutines*perGoroutine)
	for _, line := range lines {
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &event), "mangled line: %s", line)
	}
}

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
