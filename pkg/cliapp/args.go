package cliapp

// Arguments is the parsed form of a scenario-runner command line.
type Arguments struct {
	// Name is the requested scenario name, nil when --name was not given.
	Name *string
	// Input is the scenario input, nil when --input was not given.
	Input *string
	// ListScenarios requests enumeration of all scenario names.
	ListScenarios bool
	// Help requests the usage text.
	Help bool
}

// ParseArguments parses raw command-line tokens into Arguments.
//
// The first token (the executable name) is skipped. Flags match exactly and
// case-sensitively; there is no prefix matching and no "--flag=value" form.
// -n/--name and -i/--input consume the following token as their value, with
// the last occurrence winning on repeats. -l/--list-scenarios and -h/--help
// are idempotent flags. Any other token fails the parse.
func ParseArguments(raw []string) (Arguments, error) {
	var args Arguments

	for i := 1; i < len(raw); i++ {
		switch raw[i] {
		case "-n", "--name":
			i++
			if i >= len(raw) {
				return Arguments{}, &MissingValueError{Parameter: "name"}
			}
			value := raw[i]
			args.Name = &value
		case "-i", "--input":
			i++
			if i >= len(raw) {
				return Arguments{}, &MissingValueError{Parameter: "input"}
			}
			value := raw[i]
			args.Input = &value
		case "-l", "--list-scenarios":
			args.ListScenarios = true
		case "-h", "--help":
			args.Help = true
		default:
			return Arguments{}, &UnknownArgumentError{Token: raw[i]}
		}
	}

	return args, nil
}
