package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeFailures indicates the harness ran but some invocations failed.
	ExitCodeFailures = 3
)

// errInvocationsFailed signals that the run completed but invocations failed.
// It maps to ExitCodeFailures so scripts can tell harness failures from
// harness errors.
var errInvocationsFailed = errors.New("invocations failed")

// rootCmd represents the base command for the scenarist application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "scenarist",
	Short: "Drive test scenario runners from YAML suites",
	Long: `scenarist executes YAML-defined invocation suites against a test
scenario runner binary, captures its trace stream, and checks the observed
behavior against per-invocation expectations.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "scenarist version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if errors.Is(err, errInvocationsFailed) {
		return ExitCodeFailures
	}
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
