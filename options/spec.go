// Package options parses command-line arguments into bindings of alias groups.
//
// Each declared option has one or more interchangeable names. The parser is
// built on pflag: every group is registered as one flag, and the remaining
// spellings are folded onto it by a normalize func.
package options

import (
	"fmt"

	"github.com/amonks/propdemo/alias"
)

// Arity says whether an option takes a value.
type Arity int

const (
	NoArgument Arity = iota
	RequiredArgument
	OptionalArgument
)

func (a Arity) String() string {
	switch a {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return fmt.Sprintf("Arity(%d)", int(a))
	}
}

// Spec declares one logical option.
type Spec struct {
	Aliases     alias.Group
	Arity       Arity
	Description string
}

// Accepts declares an option known by all of the given names.
func Accepts(aliases ...string) Spec {
	return Spec{Aliases: alias.Group(aliases)}
}

// WithRequiredArg returns a copy of the spec that requires a value.
func (s Spec) WithRequiredArg() Spec {
	s.Arity = RequiredArgument
	return s
}

// WithOptionalArg returns a copy of the spec that accepts an optional value.
func (s Spec) WithOptionalArg() Spec {
	s.Arity = OptionalArgument
	return s
}

// Describe returns a copy of the spec with a description.
func (s Spec) Describe(text string) Spec {
	s.Description = text
	return s
}

// Binding is an option found on the command line with the values given for it.
type Binding struct {
	Aliases alias.Group
	Values  []string
}
