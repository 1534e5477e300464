package scenario

import (
	"scenarist/pkg/strutil"
)

// Scenario is a named, independently runnable unit of test logic.
//
// Names must be non-empty and must not contain dots; dots are reserved as
// path separators in qualified scenario names. A nil input means no input
// was given on the command line - whether that is acceptable is up to the
// scenario itself.
type Scenario interface {
	// Name returns the scenario name.
	Name() string
	// Run executes the scenario with the given optional input.
	Run(input *string) error
}

// Group is a named namespace node owning child groups and child scenarios.
//
// Both child sequences are ordered; insertion order is significant for both
// resolution tie-breaks and enumeration. A group exclusively owns its
// children: the built structure is a tree, not a graph.
type Group interface {
	// Name returns the group name.
	Name() string
	// Groups returns the child groups in construction order.
	Groups() []Group
	// Scenarios returns the child scenarios in construction order.
	Scenarios() []Scenario
	// FindScenario resolves a dotted path within this group's subtree.
	// It returns nil when the path does not resolve to a scenario.
	FindScenario(path string) Scenario
}

// GroupNode is the common Group implementation. Children are fixed at
// construction and never mutated afterwards, so a GroupNode is safe to share
// across concurrent readers.
type GroupNode struct {
	name      string
	scenarios []Scenario
	groups    []Group
}

// NewGroup creates a group with the given ordered children.
//
// Duplicate child names are not validated: when two direct children share a
// name, resolution always returns the first one in construction order and
// the later sibling is unreachable by path.
func NewGroup(name string, scenarios []Scenario, groups []Group) *GroupNode {
	return &GroupNode{
		name:      name,
		scenarios: scenarios,
		groups:    groups,
	}
}

// Name returns the group name.
func (g *GroupNode) Name() string {
	return g.name
}

// Groups returns the child groups in construction order.
func (g *GroupNode) Groups() []Group {
	return g.groups
}

// Scenarios returns the child scenarios in construction order.
func (g *GroupNode) Scenarios() []Scenario {
	return g.scenarios
}

// FindScenario resolves a dotted path against this group's subtree, never
// searching upward.
//
// A path with a single segment is matched against the group's own scenarios
// only; subgroups are not searched. A multi-segment path descends into the
// first subgroup whose name matches the leading segment and resolves the
// remainder there; the full dotted string is never tried as a literal
// scenario name. The empty path never resolves, since scenario names are
// never empty.
func (g *GroupNode) FindScenario(path string) Scenario {
	segments := strutil.Split(path, ".")
	if len(segments) == 1 {
		for _, s := range g.scenarios {
			if s.Name() == path {
				return s
			}
		}
		return nil
	}

	for _, child := range g.groups {
		if child.Name() == segments[0] {
			return child.FindScenario(strutil.Join(segments[1:], "."))
		}
	}

	return nil
}

// Func adapts a name and a function into a Scenario. It is the usual way
// scenario binaries register leaves without declaring a type per scenario.
func Func(name string, run func(input *string) error) Scenario {
	return &funcScenario{name: name, run: run}
}

type funcScenario struct {
	name string
	run  func(input *string) error
}

func (s *funcScenario) Name() string {
	return s.name
}

func (s *funcScenario) Run(input *string) error {
	return s.run(input)
}
