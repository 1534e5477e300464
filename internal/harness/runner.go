package harness

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// defaultInvocationTimeout applies when neither the config, the suite, nor
// the invocation sets one.
const defaultInvocationTimeout = 5 * time.Second

// errFailFast aborts the remaining invocations of a fail-fast run. It never
// escapes Run.
var errFailFast = errors.New("fail-fast abort")

// Runner executes a suite of invocations against a scenario-runner binary.
type Runner struct {
	config   Config
	logger   Logger
	reporter *Reporter
}

// NewRunner creates a runner for the given configuration.
func NewRunner(config Config, logger Logger, reporter *Reporter) *Runner {
	return &Runner{
		config:   config,
		logger:   logger,
		reporter: reporter,
	}
}

// Run executes all invocations of the suite and returns the aggregate
// result. Skipped invocations are reported but never executed. With
// Parallel > 1 invocations run concurrently; fail-fast cancels whatever has
// not started yet.
func (r *Runner) Run(ctx context.Context, suite Suite) (*SuiteResult, error) {
	suite = FilterInvocations(suite, r.config.Scenario)

	result := &SuiteResult{
		Suite:     suite.Name,
		StartTime: time.Now(),
		Total:     len(suite.Invocations),
		Results:   make([]InvocationResult, len(suite.Invocations)),
	}

	r.reporter.ReportStart(r.config, suite)

	if len(suite.Invocations) == 0 {
		result.Duration = time.Since(result.StartTime)
		r.reporter.ReportSuiteResult(result)
		return result, nil
	}

	if r.config.Parallel <= 1 {
		r.runSequential(ctx, suite, result)
	} else {
		r.runParallel(ctx, suite, result)
	}

	for _, res := range result.Results {
		r.countResult(result, res)
	}

	result.Duration = time.Since(result.StartTime)
	r.reporter.ReportSuiteResult(result)

	if r.config.ReportPath != "" {
		if err := writeReport(result, r.config.ReportPath); err != nil {
			return result, fmt.Errorf("failed to write report: %w", err)
		}
	}

	return result, nil
}

func (r *Runner) runSequential(ctx context.Context, suite Suite, result *SuiteResult) {
	for i, inv := range suite.Invocations {
		res := r.runInvocation(ctx, suite, inv)
		result.Results[i] = res
		r.reporter.ReportInvocationResult(res)

		if r.config.FailFast && (res.Status == StatusFailed || res.Status == StatusError) {
			// Mark the remainder as skipped so totals still add up.
			for j := i + 1; j < len(suite.Invocations); j++ {
				result.Results[j] = skippedResult(suite.Invocations[j], "skipped by fail-fast")
			}
			break
		}
	}
}

func (r *Runner) runParallel(ctx context.Context, suite Suite, result *SuiteResult) {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.config.Parallel)

	var mu sync.Mutex
	for i, inv := range suite.Invocations {
		i, inv := i, inv
		group.Go(func() error {
			if groupCtx.Err() != nil {
				mu.Lock()
				result.Results[i] = skippedResult(inv, "skipped by fail-fast")
				mu.Unlock()
				return nil
			}

			res := r.runInvocation(groupCtx, suite, inv)

			mu.Lock()
			result.Results[i] = res
			mu.Unlock()
			r.reporter.ReportInvocationResult(res)

			if r.config.FailFast && (res.Status == StatusFailed || res.Status == StatusError) {
				return errFailFast
			}
			return nil
		})
	}

	// The only worker error is the fail-fast sentinel used to cancel the
	// group; results carry the actual outcome.
	_ = group.Wait()
}

// runInvocation executes one invocation and evaluates its expectations.
func (r *Runner) runInvocation(ctx context.Context, suite Suite, inv Invocation) InvocationResult {
	result := InvocationResult{
		RunID:      uuid.New().String(),
		Invocation: inv,
		StartTime:  time.Now(),
		ExitCode:   -1,
	}

	if inv.Skip {
		result.Status = StatusSkipped
		return result
	}

	timeout := r.invocationTimeout(suite, inv)
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := buildRunnerArgs(inv)
	r.logger.Debug("running %s %s (run %s)\n", r.config.RunnerPath, strings.Join(args, " "), result.RunID)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, r.config.RunnerPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	execErr := cmd.Run()
	result.Duration = time.Since(result.StartTime)
	result.Stderr = stderr.String()
	result.Logs = ParseLogContainer(stdout.String())
	result.EventCount = result.Logs.Len()

	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runCtx.Err() == context.DeadlineExceeded {
		result.Status = StatusError
		result.Detail = fmt.Sprintf("timed out after %s", timeout)
		return result
	}

	var startErr *exec.Error
	if errors.As(execErr, &startErr) {
		result.Status = StatusError
		result.Detail = fmt.Sprintf("failed to start runner: %v", execErr)
		return result
	}

	result.Status, result.Detail = evaluateExpectation(*inv.Expect, execErr, result.Stderr, result.Logs)
	return result
}

func (r *Runner) invocationTimeout(suite Suite, inv Invocation) time.Duration {
	if inv.Timeout > 0 {
		return inv.Timeout
	}
	if suite.Timeout > 0 {
		return suite.Timeout
	}
	if r.config.Timeout > 0 {
		return r.config.Timeout
	}
	return defaultInvocationTimeout
}

func (r *Runner) countResult(result *SuiteResult, res InvocationResult) {
	switch res.Status {
	case StatusPassed:
		result.Passed++
	case StatusFailed:
		result.Failed++
	case StatusSkipped:
		result.Skipped++
	case StatusError:
		result.Errored++
	}
}

// buildRunnerArgs translates an invocation into the runner's argument
// grammar.
func buildRunnerArgs(inv Invocation) []string {
	args := []string{"--name", inv.Scenario}
	if inv.Input != nil {
		args = append(args, "--input", *inv.Input)
	}
	return args
}

// evaluateExpectation checks an invocation's observed behavior against its
// expectation block.
func evaluateExpectation(expect Expectation, execErr error, stderr string, logs *LogContainer) (Status, string) {
	succeeded := execErr == nil

	if expect.Success && !succeeded {
		detail := fmt.Sprintf("expected clean exit, got: %v", execErr)
		if trimmed := strings.TrimSpace(stderr); trimmed != "" {
			detail += " (stderr: " + trimmed + ")"
		}
		return StatusFailed, detail
	}
	if !expect.Success && succeeded {
		return StatusFailed, "expected failure, but runner exited cleanly"
	}

	for _, want := range expect.ErrorContains {
		if !strings.Contains(stderr, want) {
			return StatusFailed, fmt.Sprintf("stderr does not contain %q", want)
		}
	}

	for _, match := range expect.LogContains {
		found, err := logs.Contains(match.Field, match.Pattern)
		if err != nil {
			return StatusError, err.Error()
		}
		if !found {
			return StatusFailed, fmt.Sprintf("no trace event with field %q matching %q", match.Field, match.Pattern)
		}
	}

	return StatusPassed, ""
}

func skippedResult(inv Invocation, detail string) InvocationResult {
	return InvocationResult{
		RunID:      uuid.New().String(),
		Invocation: inv,
		Status:     StatusSkipped,
		Detail:     detail,
		ExitCode:   -1,
	}
}

func writeReport(result *SuiteResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
