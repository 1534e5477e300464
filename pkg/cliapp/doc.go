// Package cliapp implements the command-line surface of a scenario-runner
// binary: a fixed argument grammar, its error taxonomy, and the
// help/list/run dispatch over a scenario.TestContext.
//
// The grammar is deliberately hand-rolled rather than built on a flag
// library. Tokens match exactly (no prefix matching, no "--flag=value"),
// repeated value flags overwrite sequentially, and unknown tokens fail the
// whole invocation - behaviors the runner's callers depend on and that
// generic flag parsers relax.
package cliapp
