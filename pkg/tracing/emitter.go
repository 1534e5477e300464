package tracing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// Field is one key/value pair of an event. Values must be representable as
// JSON; anything json.Marshal rejects is emitted as its fmt.Sprintf("%v")
// string so a bad field can never lose the rest of the event.
type Field struct {
	Key   string
	Value any
}

// Fields is an insertion-ordered field mapping. It serializes as a JSON
// object whose keys appear in slice order.
type Fields []Field

// F is shorthand for constructing a single Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Emitter writes structured events as compact single-line JSON objects.
//
// Every event carries a timestamp field holding the elapsed microseconds
// since the emitter was constructed, formatted as a decimal string. Events
// below the configured minimum level are silently dropped. Each record is
// rendered into a private buffer and handed to the writer as one Write call
// under a mutex, so concurrent emits never interleave partial lines.
type Emitter struct {
	mu            sync.Mutex
	w             io.Writer
	min           Level
	tagGoroutines bool
	start         time.Time
}

// NewEmitter creates an emitter writing to w. Events below min are dropped.
// When tagGoroutines is set, each event carries a threadId field naming the
// emitting goroutine.
func NewEmitter(w io.Writer, min Level, tagGoroutines bool) *Emitter {
	return &Emitter{
		w:             w,
		min:           min,
		tagGoroutines: tagGoroutines,
		start:         time.Now(),
	}
}

// Emit writes one event. An empty target omits the target field.
func (e *Emitter) Emit(target string, level Level, fields Fields) {
	if level < e.min {
		return
	}

	elapsed := time.Since(e.start).Microseconds()

	var buf bytes.Buffer
	buf.WriteByte('{')
	writeStringField(&buf, "timestamp", strconv.FormatInt(elapsed, 10))
	buf.WriteByte(',')
	writeStringField(&buf, "level", level.String())
	buf.WriteString(`,"fields":`)
	writeFields(&buf, fields)
	if target != "" {
		buf.WriteByte(',')
		writeStringField(&buf, "target", target)
	}
	if e.tagGoroutines {
		buf.WriteByte(',')
		writeStringField(&buf, "threadId", fmt.Sprintf("goroutine(%d)", goroutineID()))
	}
	buf.WriteString("}\n")

	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = e.w.Write(buf.Bytes())
}

func writeStringField(buf *bytes.Buffer, key, value string) {
	writeJSONString(buf, key)
	buf.WriteByte(':')
	writeJSONString(buf, value)
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, err := json.Marshal(s)
	if err != nil {
		// Strings always marshal; keep the event well formed regardless.
		buf.WriteString(`""`)
		return
	}
	buf.Write(b)
}

func writeFields(buf *bytes.Buffer, fields Fields) {
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, f.Key)
		buf.WriteByte(':')
		b, err := json.Marshal(f.Value)
		if err != nil {
			b, _ = json.Marshal(fmt.Sprintf("%v", f.Value))
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
}

// goroutineID extracts the numeric goroutine id from the runtime stack
// header ("goroutine N [running]:"). The runtime exposes no direct API for
// this; the header format has been stable across releases.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	stack := buf[:n]

	const prefix = "goroutine "
	stack = stack[len(prefix):]
	for i, c := range stack {
		if c < '0' || c > '9' {
			stack = stack[:i]
			break
		}
	}
	id, err := strconv.ParseUint(string(stack), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

var (
	defaultEmitter *Emitter
	defaultOnce    sync.Once
)

// Default returns the process-wide emitter used by the package-level
// helpers: stdout, minimum level Trace, goroutine tagging enabled. It is
// created on first use and lives for the remainder of the process; its
// elapsed-time origin is the moment of that first use.
func Default() *Emitter {
	defaultOnce.Do(func() {
		defaultEmitter = NewEmitter(os.Stdout, LevelTrace, true)
	})
	return defaultEmitter
}

// Trace emits a TRACE-level event through the default emitter.
func Trace(target string, fields ...Field) {
	Default().Emit(target, LevelTrace, fields)
}

// Debug emits a DEBUG-level event through the default emitter.
func Debug(target string, fields ...Field) {
	Default().Emit(target, LevelDebug, fields)
}

// Info emits an INFO-level event through the default emitter.
func Info(target string, fields ...Field) {
	Default().Emit(target, LevelInfo, fields)
}

// Warn emits a WARN-level event through the default emitter.
func Warn(target string, fields ...Field) {
	Default().Emit(target, LevelWarn, fields)
}

// Error emits an ERROR-level event through the default emitter.
func Error(target string, fields ...Field) {
	Default().Emit(target, LevelError, fields)
}
