package harness

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// suiteLoader loads invocation suites from YAML files.
type suiteLoader struct {
	logger Logger
}

// NewSuiteLoader creates a suite loader.
func NewSuiteLoader(logger Logger) *suiteLoader {
	return &suiteLoader{logger: logger}
}

// LoadSuites loads suites from the given path: a single YAML file or a
// directory walked for *.yaml / *.yml files.
func (l *suiteLoader) LoadSuites(path string) ([]Suite, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("suite path does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat suite path: %w", err)
	}

	if !info.IsDir() {
		suite, err := l.loadSuiteFromFile(path)
		if err != nil {
			return nil, err
		}
		return []Suite{suite}, nil
	}

	var suites []Suite
	err = filepath.WalkDir(path, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAMLFile(filePath) {
			return nil
		}

		l.logger.Debug("loading suite file: %s\n", filePath)

		suite, err := l.loadSuiteFromFile(filePath)
		if err != nil {
			return err
		}
		suites = append(suites, suite)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk suite directory %s: %w", path, err)
	}

	return suites, nil
}

func (l *suiteLoader) loadSuiteFromFile(path string) (Suite, error) {
	var suite Suite

	content, err := os.ReadFile(path)
	if err != nil {
		return suite, fmt.Errorf("failed to read suite file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &suite); err != nil {
		return suite, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}

	if err := validateSuite(&suite); err != nil {
		return suite, fmt.Errorf("invalid suite in %s: %w", path, err)
	}

	return suite, nil
}

func validateSuite(suite *Suite) error {
	if suite.Name == "" {
		return fmt.Errorf("suite name is required")
	}
	if len(suite.Invocations) == 0 {
		return fmt.Errorf("suite must define at least one invocation")
	}

	for i := range suite.Invocations {
		inv := &suite.Invocations[i]
		if inv.Scenario == "" {
			return fmt.Errorf("invocation %d: scenario name is required", i)
		}
		// A missing expect block means "must exit cleanly".
		if inv.Expect == nil {
			inv.Expect = &Expectation{Success: true}
		}
	}

	return nil
}

// FilterInvocations restricts a suite to invocations of one scenario.
// An empty filter keeps everything.
func FilterInvocations(suite Suite, scenarioFilter string) Suite {
	if scenarioFilter == "" {
		return suite
	}

	filtered := suite
	filtered.Invocations = nil
	for _, inv := range suite.Invocations {
		if inv.Scenario == scenarioFilter {
			filtered.Invocations = append(filtered.Invocations, inv)
		}
	}
	return filtered
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
