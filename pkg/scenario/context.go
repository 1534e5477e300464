package scenario

import (
	"fmt"
)

// NotFoundError indicates that a requested scenario name did not resolve to
// any scenario in the tree.
type NotFoundError struct {
	// Name is the requested dotted scenario name, verbatim.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scenario %s not found", e.Name)
}

// TestContext binds a root group to the run and list operations. It holds no
// state beyond the root reference and is safe to reuse across many calls.
//
// The root group's own name is synthetic: it never appears in qualified
// scenario names and is never part of a resolvable path.
type TestContext struct {
	root Group
}

// NewTestContext creates a test context over the given root group.
func NewTestContext(root Group) *TestContext {
	return &TestContext{root: root}
}

// Run resolves name against the root group and executes the resolved
// scenario with the given optional input.
//
// Unresolvable names fail with *NotFoundError. Errors from the scenario
// itself are propagated unchanged - the context has no way to know which
// scenario failures are recoverable, so it never wraps them.
func (tc *TestContext) Run(name string, input *string) error {
	s := tc.root.FindScenario(name)
	if s == nil {
		return &NotFoundError{Name: name}
	}
	return s.Run(input)
}

// ListScenarios returns the qualified names of every scenario in the tree,
// recomputed fresh on each call.
//
// The traversal flattens all subgroups in order before appending the current
// group's own direct scenarios, so descendants of earlier siblings always
// precede a group's own leaves in the output. Direct scenarios of the root
// carry no prefix; nested ones accumulate each ancestor group name joined
// by dots.
func (tc *TestContext) ListScenarios() []string {
	return listScenarios(tc.root, "")
}

func listScenarios(group Group, prefix string) []string {
	var names []string

	for _, child := range group.Groups() {
		names = append(names, listScenarios(child, joinName(prefix, child.Name()))...)
	}

	for _, s := range group.Scenarios() {
		names = append(names, joinName(prefix, s.Name()))
	}

	return names
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
