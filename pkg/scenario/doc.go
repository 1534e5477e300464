// Package scenario organizes named test scenarios into a hierarchical
// namespace and resolves them by dotted path.
//
// A tree is built once at process start from Scenario leaves and Group
// nodes, then treated as read-only. TestContext is the facade binding a root
// group to the two operations a runner binary needs: running one scenario by
// qualified name and enumerating all qualified names.
//
// # Resolution semantics
//
// FindScenario splits the path on dots. A bare name only matches the current
// group's direct scenarios; a dotted name only descends through subgroups
// matching each intermediate segment. Resolution never falls back between
// the two branches and always takes the first match in construction order,
// so later same-named siblings are unreachable by path.
//
// # Building a runner
//
//	root := scenario.NewGroup("root",
//		[]scenario.Scenario{scenario.Func("smoke", runSmoke)},
//		[]scenario.Group{
//			scenario.NewGroup("net", netScenarios, nil),
//		},
//	)
//	tc := scenario.NewTestContext(root)
//
// The root group's name is never addressable; "net.some_scenario" and
// "smoke" are the qualified names of the tree above.
package scenario
