package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTestContext_Run(t *testing.T) {
	tc := NewTestContext(newTestTree())

	t.Run("nil input propagates scenario error", func(t *testing.T) {
		err := tc.Run("inner_group.inner_scenario", nil)
		require.Error(t, err)
		assert.Equal(t, "missing input", err.Error())
	})

	t.Run("ok input succeeds", func(t *testing.T) {
		assert.NoError(t, tc.Run("inner_group.inner_scenario", strPtr("ok")))
	})

	t.Run("scenario error is propagated unchanged", func(t *testing.T) {
		err := tc.Run("inner_group.inner_scenario", strPtr("error"))
		require.Error(t, err)
		assert.Equal(t, "requested error", err.Error())
	})

	t.Run("unknown name fails with NotFoundError", func(t *testing.T) {
		err := tc.Run("some_scenario", nil)
		require.Error(t, err)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "some_scenario", notFound.Name)
		assert.Equal(t, "scenario some_scenario not found", err.Error())
	})
}

func TestTestContext_ListScenarios(t *testing.T) {
	t.Run("subgroup scenarios precede own scenarios", func(t *testing.T) {
		tc := NewTestContext(newTestTree())
		assert.Equal(t, []string{"inner_group.inner_scenario", "outer_scenario"}, tc.ListScenarios())
	})

	t.Run("empty group yields empty list", func(t *testing.T) {
		tc := NewTestContext(NewGroup("root", nil, nil))
		assert.Empty(t, tc.ListScenarios())
	})

	t.Run("root name never appears in qualified names", func(t *testing.T) {
		inner := NewGroup("inner", []Scenario{&stubScenario{name: "s"}}, nil)
		tc := NewTestContext(NewGroup("root", nil, []Group{inner}))
		assert.Equal(t, []string{"inner.s"}, tc.ListScenarios())
	})

	t.Run("sibling groups flatten fully and in order", func(t *testing.T) {
		a := NewGroup("a", []Scenario{&stubScenario{name: "a1"}, &stubScenario{name: "a2"}}, nil)
		deep := NewGroup("deep", []Scenario{&stubScenario{name: "d1"}}, nil)
		b := NewGroup("b", []Scenario{&stubScenario{name: "b1"}}, []Group{deep})
		root := NewGroup("root", []Scenario{&stubScenario{name: "top"}}, []Group{a, b})

		tc := NewTestContext(root)
		assert.Equal(t, []string{"a.a1", "a.a2", "b.deep.d1", "b.b1", "top"}, tc.ListScenarios())
	})

	t.Run("recomputed fresh each call", func(t *testing.T) {
		tc := NewTestContext(newTestTree())
		first := tc.ListScenarios()
		second := tc.ListScenarios()
		assert.Equal(t, first, second)
	})
}
