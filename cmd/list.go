package cmd

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	listRunnerPath string
	listPlain      bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scenarios a runner binary exposes",
	Long: `The list command asks a scenario runner binary for its registered
scenarios by invoking it with --list-scenarios, and prints the qualified
names it reports.

Example usage:
  scenarist list --runner ./bin/demo-runner
  scenarist list --runner ./bin/demo-runner --plain`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listRunnerPath, "runner", "", "Path to the scenario runner binary")
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Print bare scenario names, one per line")

	_ = listCmd.MarkFlagRequired("runner")
}

func runList(cmd *cobra.Command, args []string) error {
	var stdout, stderr bytes.Buffer

	runner := exec.CommandContext(cmd.Context(), listRunnerPath, "--list-scenarios")
	runner.Stdout = &stdout
	runner.Stderr = &stderr

	if err := runner.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("runner failed to list scenarios: %s", msg)
		}
		return fmt.Errorf("runner failed to list scenarios: %w", err)
	}

	names := parseScenarioNames(stdout.String())
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "⚠️  Runner reports no scenarios")
		return nil
	}

	if listPlain {
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("#"),
		text.FgHiCyan.Sprint("SCENARIO"),
	})
	for i, name := range names {
		t.AppendRow(table.Row{i + 1, name})
	}
	t.Render()

	fmt.Fprintf(cmd.OutOrStdout(), "📋 %d scenarios registered\n", len(names))
	return nil
}

// parseScenarioNames extracts scenario names from the runner's listing
// output, one name per line.
func parseScenarioNames(output string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}
