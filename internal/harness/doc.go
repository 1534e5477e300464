// Package harness drives scenario-runner binaries from YAML invocation
// suites.
//
// A suite lists invocations: scenario name, optional input, and an
// expectation block. The harness executes each invocation as a subprocess of
// the runner under test, captures its trace stream from stdout, and checks
// the observed exit status, stderr, and trace events against the
// expectations. Invocations run sequentially or through a bounded worker
// pool.
//
// The harness never interprets scenario semantics; it only observes the
// runner's process-level contract.
package harness
