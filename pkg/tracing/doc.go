// Package tracing is the structured-event side channel for scenario
// binaries. Scenarios report progress by emitting events; a harness on the
// other side of the pipe reconstructs them from stdout.
//
// Each event is one compact JSON line:
//
//	{"timestamp":"1523","level":"INFO","fields":{"id":"worker_1","value":42},"target":"net","threadId":"goroutine(7)"}
//
// The timestamp is the elapsed time since the emitter was created, in
// microseconds, formatted as a string. Field order within "fields" follows
// the order the caller passed, and a whole record is written atomically so
// concurrent scenarios cannot mangle each other's lines.
//
// Library code never emits events on its own; only scenario bodies do,
// either through an explicitly constructed Emitter or the package-level
// helpers backed by Default().
package tracing
