// Command example-scenarios is a small scenario runner built on the
// scenario, cliapp, and tracing packages. It doubles as library usage
// documentation and as an integration target for the harness.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"scenarist/pkg/cliapp"
	"scenarist/pkg/scenario"
	"scenarist/pkg/strutil"
	"scenarist/pkg/tracing"
)

func main() {
	os.Exit(cliapp.Main(scenario.NewTestContext(buildTree())))
}

func buildTree() scenario.Group {
	greeter := scenario.NewGroup("greeter",
		[]scenario.Scenario{
			scenario.Func("hello", hello),
			scenario.Func("shout", shout),
		},
		nil,
	)

	math := scenario.NewGroup("math",
		[]scenario.Scenario{
			scenario.Func("double", double),
		},
		nil,
	)

	return scenario.NewGroup("examples",
		[]scenario.Scenario{
			scenario.Func("noop", func(input *string) error {
				tracing.Info("examples", tracing.F("message", "noop ran"))
				return nil
			}),
		},
		[]scenario.Group{greeter, math},
	)
}

func hello(input *string) error {
	name := "world"
	if input != nil {
		name = strutil.Trim(*input)
	}

	tracing.Info("greeter",
		tracing.F("message", "greeting"),
		tracing.F("name", name),
	)
	fmt.Printf("hello, %s\n", name)
	return nil
}

func shout(input *string) error {
	if input == nil {
		return errors.New("shout needs something to shout")
	}

	tracing.Debug("greeter", tracing.F("message", "shouting"))
	fmt.Printf("%s!!!\n", *input)
	return nil
}

func double(input *string) error {
	if input == nil {
		return errors.New("double needs a number")
	}

	n, err := strconv.Atoi(strutil.Trim(*input))
	if err != nil {
		return fmt.Errorf("double needs a number: %w", err)
	}

	tracing.Info("math",
		tracing.F("message", "doubled"),
		tracing.F("input", strconv.Itoa(n)),
		tracing.F("result", strconv.Itoa(2*n)),
	)
	return nil
}
