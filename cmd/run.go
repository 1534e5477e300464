package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"scenarist/internal/harness"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	runRunnerPath string
	runSuitePath  string
	runScenario   string
	runParallel   int
	runFailFast   bool
	runTimeout    time.Duration
	runReportPath string
	runVerbose    bool
	runDebug      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute invocation suites against a scenario runner",
	Long: `The run command loads YAML invocation suites and executes each
invocation as a subprocess of the scenario runner under test.

Every invocation names a scenario (passed as --name to the runner), an
optional input (passed as --input), and an expectation block describing the
required exit status, stderr content, and trace events. The harness captures
the runner's stdout as a trace stream and evaluates the expectations.

Example usage:
  scenarist run --runner ./bin/demo-runner --suite suites/
  scenarist run --runner ./bin/demo-runner --suite smoke.yaml --scenario outer_group.outer_scenario
  scenarist run --runner ./bin/demo-runner --suite suites/ --parallel 4 --fail-fast
  scenarist run --runner ./bin/demo-runner --suite suites/ --report report.json`,
	RunE: runHarness,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runRunnerPath, "runner", "", "Path to the scenario runner binary under test")
	runCmd.Flags().StringVar(&runSuitePath, "suite", "", "Path to a suite YAML file or a directory of suites")
	runCmd.Flags().StringVar(&runScenario, "scenario", "", "Run only invocations of this scenario")
	runCmd.Flags().IntVar(&runParallel, "parallel", 1, "Number of concurrent invocations per suite")
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "Stop on the first failed invocation")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 30*time.Second, "Default per-invocation timeout")
	runCmd.Flags().StringVar(&runReportPath, "report", "", "Path to save a JSON report (default: stdout summary only)")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Enable per-invocation output")
	runCmd.Flags().BoolVar(&runDebug, "debug", false, "Enable harness debug logging")

	_ = runCmd.MarkFlagRequired("runner")
	_ = runCmd.MarkFlagRequired("suite")
}

func runHarness(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupts gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, stopping invocations gracefully...")
		cancel()
	}()

	if _, err := os.Stat(runRunnerPath); err != nil {
		return fmt.Errorf("runner binary not found at %s: %w", runRunnerPath, err)
	}

	logger := harness.NewStdoutLogger(runVerbose, runDebug)
	loader := harness.NewSuiteLoader(logger)

	suites, err := loader.LoadSuites(runSuitePath)
	if err != nil {
		return fmt.Errorf("failed to load suites: %w", err)
	}
	if len(suites) == 0 {
		fmt.Printf("⚠️  No suites found in %s\n", runSuitePath)
		return nil
	}

	config := harness.Config{
		RunnerPath: runRunnerPath,
		Scenario:   runScenario,
		Parallel:   runParallel,
		FailFast:   runFailFast,
		Verbose:    runVerbose,
		Debug:      runDebug,
		Timeout:    runTimeout,
		ReportPath: runReportPath,
	}

	var s *spinner.Spinner
	if !runVerbose && !runDebug {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Running invocation suites..."
		s.Start()
	}

	reporter := harness.NewReporter(logger)

	failures := 0
	for _, suite := range suites {
		suiteConfig := config
		// One report file per suite, so suites do not overwrite each other.
		if runReportPath != "" && len(suites) > 1 {
			suiteConfig.ReportPath = perSuiteReportPath(runReportPath, suite.Name)
		}

		runner := harness.NewRunner(suiteConfig, logger, reporter)
		result, err := runner.Run(ctx, suite)
		if s != nil {
			s.Stop()
			s = nil
		}
		if err != nil {
			return fmt.Errorf("suite %s: %w", suite.Name, err)
		}
		failures += result.Failed + result.Errored

		if runFailFast && failures > 0 {
			break
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d %w", failures, errInvocationsFailed)
	}
	return nil
}

// perSuiteReportPath inserts the suite name before the report extension.
func perSuiteReportPath(base, suiteName string) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(base, ext), suiteName, ext)
}
