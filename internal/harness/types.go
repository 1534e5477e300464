package harness

import (
	"time"
)

// Status represents the outcome of one invocation.
type Status string

const (
	// StatusPassed indicates the invocation met all expectations.
	StatusPassed Status = "PASSED"
	// StatusFailed indicates an expectation was not met.
	StatusFailed Status = "FAILED"
	// StatusSkipped indicates the invocation was skipped.
	StatusSkipped Status = "SKIPPED"
	// StatusError indicates the harness could not evaluate the invocation
	// (timeout, unstartable runner, bad expectation pattern).
	StatusError Status = "ERROR"
)

// LogMatch asserts that the runner's trace stream contains at least one
// event whose field matches a regular expression.
type LogMatch struct {
	// Field is the entry field to inspect: level, target, threadId,
	// timestamp, or any key from an event's fields object.
	Field string `yaml:"field"`
	// Pattern is an RE2 regular expression applied to the field value.
	Pattern string `yaml:"pattern"`
}

// Expectation defines what a passing invocation looks like.
type Expectation struct {
	// Success indicates whether the runner process must exit cleanly.
	Success bool `yaml:"success"`
	// ErrorContains lists substrings that must appear on stderr.
	ErrorContains []string `yaml:"error_contains,omitempty"`
	// LogContains lists trace-stream matches that must all be present.
	LogContains []LogMatch `yaml:"log_contains,omitempty"`
}

// Invocation is one scenario execution request within a suite.
type Invocation struct {
	// Scenario is the dotted scenario name passed as --name.
	Scenario string `yaml:"scenario"`
	// Input is the optional value passed as --input.
	Input *string `yaml:"input,omitempty"`
	// Description provides a human-readable purpose for the invocation.
	Description string `yaml:"description,omitempty"`
	// Timeout overrides the suite timeout for this invocation.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// Skip marks the invocation as skipped without running it.
	Skip bool `yaml:"skip,omitempty"`
	// Expect defines the pass criteria. A missing block defaults to
	// expecting a clean exit.
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Suite is a named, ordered list of invocations loaded from YAML.
type Suite struct {
	// Name identifies the suite in reports.
	Name string `yaml:"name"`
	// Description provides a human-readable suite summary.
	Description string `yaml:"description,omitempty"`
	// Timeout is the default per-invocation timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// Invocations are executed in declaration order unless run in parallel.
	Invocations []Invocation `yaml:"invocations"`
}

// Config drives one harness run.
type Config struct {
	// RunnerPath is the scenario-runner executable under test.
	RunnerPath string
	// Scenario, when set, restricts the run to invocations of that scenario.
	Scenario string
	// Parallel is the number of concurrent invocations (1 = sequential).
	Parallel int
	// FailFast stops the run on the first failed invocation.
	FailFast bool
	// Verbose enables per-invocation output.
	Verbose bool
	// Debug enables harness debug logging.
	Debug bool
	// Timeout is the fallback per-invocation timeout when neither the
	// suite nor the invocation sets one.
	Timeout time.Duration
	// ReportPath, when set, receives the JSON suite report.
	ReportPath string
}

// InvocationResult captures everything observed while running one invocation.
type InvocationResult struct {
	// RunID uniquely identifies this execution.
	RunID string `json:"run_id"`
	// Invocation is the request that was executed.
	Invocation Invocation `json:"invocation"`
	// Status is the evaluated outcome.
	Status Status `json:"status"`
	// StartTime when execution began.
	StartTime time.Time `json:"start_time"`
	// Duration of the runner process.
	Duration time.Duration `json:"duration"`
	// ExitCode of the runner process (-1 when it never ran or was killed).
	ExitCode int `json:"exit_code"`
	// Stderr is the captured error output.
	Stderr string `json:"stderr,omitempty"`
	// EventCount is the number of parsed trace events.
	EventCount int `json:"event_count"`
	// Detail explains a FAILED or ERROR status.
	Detail string `json:"detail,omitempty"`

	// Logs holds the parsed trace stream; omitted from reports.
	Logs *LogContainer `json:"-"`
}

// SuiteResult aggregates a whole harness run.
type SuiteResult struct {
	// Suite is the suite name.
	Suite string `json:"suite"`
	// StartTime when the run began.
	StartTime time.Time `json:"start_time"`
	// Duration of the whole run.
	Duration time.Duration `json:"duration"`
	// Total number of invocations considered after filtering.
	Total int `json:"total"`
	// Passed, Failed, Skipped and Errored invocation counts.
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`
	// Results holds per-invocation results in suite order.
	Results []InvocationResult `json:"results"`
}

// Logger provides centralized logging for harness execution.
type Logger interface {
	// Debug logs debug-level messages (only shown when debug=true)
	Debug(format string, args ...interface{})
	// Info logs info-level messages (shown when verbose=true or debug=true)
	Info(format string, args ...interface{})
	// Error logs error-level messages (always shown)
	Error(format string, args ...interface{})
	// IsDebugEnabled returns whether debug logging is enabled
	IsDebugEnabled() bool
	// IsVerboseEnabled returns whether verbose logging is enabled
	IsVerboseEnabled() bool
}
