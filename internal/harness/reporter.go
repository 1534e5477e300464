package harness

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"scenarist/pkg/strutil"
)

// maxDetailWidth bounds the detail column of the summary table.
const maxDetailWidth = 60

// Reporter renders harness progress and the final summary. It is safe for
// concurrent use by parallel invocation workers.
type Reporter struct {
	logger Logger
	out    io.Writer
	mu     sync.Mutex
}

// NewReporter creates a reporter writing its summary to stdout.
func NewReporter(logger Logger) *Reporter {
	return NewReporterWithOutput(logger, os.Stdout)
}

// NewReporterWithOutput creates a reporter writing its summary to out.
func NewReporterWithOutput(logger Logger, out io.Writer) *Reporter {
	return &Reporter{logger: logger, out: out}
}

// ReportStart is called once before any invocation runs.
func (r *Reporter) ReportStart(config Config, suite Suite) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Info("🧪 Running suite: %s\n", suite.Name)
	if suite.Description != "" {
		r.logger.Info("   📝 %s\n", suite.Description)
	}
	r.logger.Info("   🎯 Runner: %s\n", config.RunnerPath)
	if config.Scenario != "" {
		r.logger.Info("   🔍 Scenario filter: %s\n", config.Scenario)
	}
	if config.Parallel > 1 {
		r.logger.Info("   ⚡ Parallel workers: %d\n", config.Parallel)
	}
	r.logger.Info("\n")
}

// ReportInvocationResult is called as each invocation completes.
func (r *Reporter) ReportInvocationResult(result InvocationResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Info("%s %s (%v)\n", statusSymbol(result.Status), invocationLabel(result.Invocation), result.Duration)

	if result.Detail != "" && (result.Status == StatusFailed || result.Status == StatusError) {
		r.logger.Info("   ❌ %s\n", result.Detail)
	}

	if r.logger.IsDebugEnabled() {
		r.logger.Debug("   🆔 Run: %s, exit code: %d, trace events: %d\n",
			result.RunID, result.ExitCode, result.EventCount)
		if result.Stderr != "" {
			r.logger.Debug("   📢 Stderr: %s\n", strutil.Truncate(result.Stderr, maxDetailWidth))
		}
	}
}

// ReportSuiteResult prints the final summary table and verdict line.
func (r *Reporter) ReportSuiteResult(result *SuiteResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if result.Total == 0 {
		r.logger.Error("⚠️  No invocations matched\n")
		return
	}

	if r.logger.IsVerboseEnabled() || result.Failed > 0 || result.Errored > 0 {
		r.renderTable(result)
	}

	if result.Failed == 0 && result.Errored == 0 {
		fmt.Fprintf(r.out, "✅ %d/%d invocations passed (%v)\n",
			result.Passed, result.Total, result.Duration)
	} else {
		fmt.Fprintf(r.out, "❌ %d/%d invocations failed (%v)\n",
			result.Failed+result.Errored, result.Total, result.Duration)
	}
}

func (r *Reporter) renderTable(result *SuiteResult) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("SCENARIO"),
		text.FgHiCyan.Sprint("STATUS"),
		text.FgHiCyan.Sprint("DURATION"),
		text.FgHiCyan.Sprint("DETAIL"),
	})

	for _, res := range result.Results {
		t.AppendRow(table.Row{
			invocationLabel(res.Invocation),
			coloredStatus(res.Status),
			res.Duration.Round(time.Millisecond),
			strutil.Truncate(res.Detail, maxDetailWidth),
		})
	}

	fmt.Fprintln(r.out, t.Render())
}

// invocationLabel names an invocation in output, preferring the description.
func invocationLabel(inv Invocation) string {
	label := inv.Scenario
	if inv.Input != nil {
		label = fmt.Sprintf("%s (input=%q)", label, *inv.Input)
	}
	if inv.Description != "" {
		label = fmt.Sprintf("%s - %s", label, inv.Description)
	}
	return label
}

func statusSymbol(status Status) string {
	switch status {
	case StatusPassed:
		return "✅"
	case StatusFailed:
		return "❌"
	case StatusSkipped:
		return "⏭️"
	case StatusError:
		return "💥"
	default:
		return "❓"
	}
}

func coloredStatus(status Status) string {
	switch status {
	case StatusPassed:
		return text.FgGreen.Sprint(status)
	case StatusFailed:
		return text.FgRed.Sprint(status)
	case StatusSkipped:
		return text.FgHiBlack.Sprint(status)
	case StatusError:
		return text.FgHiRed.Sprint(status)
	default:
		return string(status)
	}
}
