package cliapp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"scenarist/pkg/scenario"
)

// Process exit codes for scenario-runner binaries. The original contract
// left exit codes unspecified; these give scripts one distinct code per
// error category.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeScenarioFailed indicates the resolved scenario returned an error.
	ExitCodeScenarioFailed = 1
	// ExitCodeUsage indicates an argument or dispatch error.
	ExitCodeUsage = 2
	// ExitCodeNotFound indicates the requested scenario does not exist.
	ExitCodeNotFound = 3
)

// App runs the scenario-runner command line against a test context.
// Stdout and Stderr default to the process streams; tests substitute
// buffers.
type App struct {
	Context *scenario.TestContext
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewApp creates an App bound to the process standard streams.
func NewApp(tc *scenario.TestContext) *App {
	return &App{
		Context: tc,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run parses raw arguments and dispatches.
//
// Dispatch priority is fixed regardless of how many flags are set: help
// first (usage to the error stream, then return), then list (scenario names
// to the output stream, one per line, in enumeration order), then a run,
// which requires a non-empty name. Errors from resolution or scenario
// execution are returned unchanged.
func (a *App) Run(raw []string) error {
	args, err := ParseArguments(raw)
	if err != nil {
		return err
	}

	if args.Help {
		a.printUsage()
		return nil
	}

	if args.ListScenarios {
		for _, name := range a.Context.ListScenarios() {
			fmt.Fprintln(a.Stdout, name)
		}
		return nil
	}

	if args.Name == nil {
		return &MissingNameError{}
	}
	if *args.Name == "" {
		return &EmptyNameError{}
	}

	return a.Context.Run(*args.Name, args.Input)
}

func (a *App) printUsage() {
	fmt.Fprintln(a.Stderr, "Test scenario runner")
	fmt.Fprintln(a.Stderr, "'-n', '--name' - test scenario name")
	fmt.Fprintln(a.Stderr, "'-i', '--input' - test scenario input")
	fmt.Fprintln(a.Stderr, "'-l', '--list-scenarios' - list available scenarios")
	fmt.Fprintln(a.Stderr, "'-h', '--help' - show help")
}

// Main is the conventional entry point for a scenario-runner binary: it runs
// os.Args against the context, reports any failure to stderr, and returns
// the exit code for the caller to pass to os.Exit.
func Main(tc *scenario.TestContext) int {
	app := NewApp(tc)
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitCode(err)
	}
	return ExitCodeSuccess
}

// ExitCode maps an error returned by Run to its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var missingValue *MissingValueError
	var unknownArg *UnknownArgumentError
	var missingName *MissingNameError
	var emptyName *EmptyNameError
	if errors.As(err, &missingValue) || errors.As(err, &unknownArg) ||
		errors.As(err, &missingName) || errors.As(err, &emptyName) {
		return ExitCodeUsage
	}

	var notFound *scenario.NotFoundError
	if errors.As(err, &notFound) {
		return ExitCodeNotFound
	}

	return ExitCodeScenarioFailed
}
