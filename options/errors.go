package options

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGroup is returned when an option declares no aliases.
	ErrEmptyGroup = errors.New("option declares no aliases")
	// ErrDuplicateAlias is returned when an alias is declared twice.
	ErrDuplicateAlias = errors.New("duplicate option alias")
	// ErrInvalidAlias is returned for aliases that cannot be spelled on a command line.
	ErrInvalidAlias = errors.New("invalid option alias")
	// ErrMultipleShorthands is returned when a group has more than one single-character alias.
	ErrMultipleShorthands = errors.New("option declares more than one single-character alias")

	// ErrMissingArgument is returned when an option requiring a value has none.
	ErrMissingArgument = errors.New("option requires an argument")
	// ErrUnexpectedArgument is returned when a value is given to an option without one.
	ErrUnexpectedArgument = errors.New("option does not take an argument")
)

// ParseError reports an argument vector that could not be parsed.
type ParseError struct {
	// Option is the option as spelled on the command line, e.g. "--charset".
	Option string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Option == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Option, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
