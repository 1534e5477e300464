package cliapp

import (
	"fmt"
)

// MissingValueError indicates a value-taking flag appeared as the final
// token, leaving nothing to consume as its value.
type MissingValueError struct {
	// Parameter is the logical parameter name ("name" or "input").
	Parameter string
}

// Error implements the error interface.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("failed to read %s parameter", e.Parameter)
}

// UnknownArgumentError indicates a token that matches no recognized flag.
type UnknownArgumentError struct {
	// Token is the offending argument, verbatim.
	Token string
}

// Error implements the error interface.
func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument provided: %s", e.Token)
}

// MissingNameError indicates a run was requested without --name.
type MissingNameError struct{}

// Error implements the error interface.
func (e *MissingNameError) Error() string {
	return "test scenario name must be provided"
}

// EmptyNameError indicates --name was given with a zero-length value.
type EmptyNameError struct{}

// Error implements the error interface.
func (e *EmptyNameError) Error() string {
	return "test scenario name must not be empty"
}
