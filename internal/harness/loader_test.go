package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSuite = `name: smoke
description: basic runner checks
timeout: 10s
invocations:
  - scenario: outer_group.outer_scenario
    input: payload
    expect:
      success: true
      log_contains:
        - field: level
          pattern: INFO
  - scenario: missing
    expect:
      success: false
      error_contains:
        - "not found"
`

func writeSuiteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSuitesFromFile(t *testing.T) {
	path := writeSuiteFile(t, t.TempDir(), "smoke.yaml", sampleSuite)

	loader := NewSuiteLoader(NewSilentLogger(false, false))
	suites, err := loader.LoadSuites(path)
	require.NoError(t, err)
	require.Len(t, suites, 1)

	suite := suites[0]
	assert.Equal(t, "smoke", suite.Name)
	require.Len(t, suite.Invocations, 2)

	first := suite.Invocations[0]
	assert.Equal(t, "outer_group.outer_scenario", first.Scenario)
	require.NotNil(t, first.Input)
	assert.Equal(t, "payload", *first.Input)
	require.NotNil(t, first.Expect)
	assert.True(t, first.Expect.Success)
	require.Len(t, first.Expect.LogContains, 1)
	assert.Equal(t, "level", first.Expect.LogContains[0].Field)

	second := suite.Invocations[1]
	assert.Nil(t, second.Input)
	assert.False(t, second.Expect.Success)
	assert.Equal(t, []string{"not found"}, second.Expect.ErrorContains)
}

func TestLoadSuitesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSuiteFile(t, dir, "a.yaml", "name: a\ninvocations:\n  - scenario: x\n")
	writeSuiteFile(t, dir, "b.yml", "name: b\ninvocations:\n  - scenario: y\n")
	writeSuiteFile(t, dir, "notes.txt", "not a suite")

	loader := NewSuiteLoader(NewSilentLogger(false, false))
	suites, err := loader.LoadSuites(dir)
	require.NoError(t, err)
	assert.Len(t, suites, 2)
}

func TestLoadSuitesMissingPath(t *testing.T) {
	loader := NewSuiteLoader(NewSilentLogger(false, false))
	_, err := loader.LoadSuites(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadSuitesInvalidYAML(t *testing.T) {
	path := writeSuiteFile(t, t.TempDir(), "bad.yaml", "name: [unclosed")

	loader := NewSuiteLoader(NewSilentLogger(false, false))
	_, err := loader.LoadSuites(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateSuite(t *testing.T) {
	tests := []struct {
		name    string
		suite   Suite
		wantErr string
	}{
		{
			name:    "missing name",
			suite:   Suite{Invocations: []Invocation{{Scenario: "x"}}},
			wantErr: "suite name is required",
		},
		{
			name:    "no invocations",
			suite:   Suite{Name: "empty"},
			wantErr: "at least one invocation",
		},
		{
			name:    "missing scenario",
			suite:   Suite{Name: "s", Invocations: []Invocation{{}}},
			wantErr: "scenario name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSuite(&tt.suite)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSuiteDefaultsExpectation(t *testing.T) {
	suite := Suite{Name: "s", Invocations: []Invocation{{Scenario: "x"}}}
	require.NoError(t, validateSuite(&suite))

	require.NotNil(t, suite.Invocations[0].Expect)
	assert.True(t, suite.Invocations[0].Expect.Success)
}

func TestFilterInvocations(t *testing.T) {
	suite := Suite{
		Name: "s",
		Invocations: []Invocation{
			{Scenario: "a"},
			{Scenario: "b"},
			{Scenario: "a"},
		},
	}

	all := FilterInvocations(suite, "")
	assert.Len(t, all.Invocations, 3)

	onlyA := FilterInvocations(suite, "a")
	require.Len(t, onlyA.Invocations, 2)
	assert.Equal(t, "a", onlyA.Invocations[0].Scenario)

	none := FilterInvocations(suite, "a.b")
	assert.Empty(t, none.Invocations)
}

func TestIsYAMLFile(t *testing.T) {
	assert.True(t, isYAMLFile("suite.yaml"))
	assert.True(t, isYAMLFile("suite.YML"))
	assert.False(t, isYAMLFile("suite.json"))
	assert.False(t, isYAMLFile("suite"))
}
