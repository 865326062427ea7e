package property

import (
	"strings"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/options"
)

const (
	// CommandLineSourceName is the name of the command line source.
	CommandLineSourceName = "commandLineArgs"
	// NonOptionArgsName holds the comma-joined non-option arguments.
	NonOptionArgsName = "nonOptionArgs"
)

// CommandLine exposes a parsed argument vector as properties.
//
// Every alias of a bound option resolves to its value, but only the aliases
// chosen by the selector are enumerated by PropertyNames.
type CommandLine struct {
	set      *options.Set
	selector alias.Selector
}

// NewCommandLine returns a source backed by set. sel decides which aliases are
// listed as property names.
func NewCommandLine(set *options.Set, sel alias.Selector) *CommandLine {
	if set == nil {
		panic("property: NewCommandLine called with nil option set")
	}
	if sel == nil {
		panic("property: NewCommandLine called with nil selector")
	}
	return &CommandLine{set: set, selector: sel}
}

func (c *CommandLine) Name() string {
	return CommandLineSourceName
}

// Property returns the comma-joined values of the option known by name.
// A flag given without a value resolves to the empty string.
func (c *CommandLine) Property(name string) (string, bool) {
	if name == NonOptionArgsName {
		nonOptions := c.set.NonOptions()
		if len(nonOptions) == 0 {
			return "", false
		}
		return strings.Join(nonOptions, ","), true
	}
	if !c.set.Has(name) {
		return "", false
	}
	return strings.Join(c.set.ValuesOf(name), ","), true
}

// PropertyNames returns the selected aliases of every bound option in
// binding order. Duplicates are kept.
func (c *CommandLine) PropertyNames() []string {
	return alias.Flatten(c.set.Groups(), c.selector)
}

// NonOptionArgs returns the arguments that were not consumed as options.
func (c *CommandLine) NonOptionArgs() []string {
	return c.set.NonOptions()
}
