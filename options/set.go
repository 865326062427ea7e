package options

import (
	"github.com/samber/lo"

	"github.com/amonks/propdemo/alias"
)

// Set is the result of parsing one argument vector.
type Set struct {
	bindings   []Binding
	index      map[string]int
	nonOptions []string
}

// Bindings returns the options found, in order of first appearance.
func (s *Set) Bindings() []Binding {
	return lo.Map(s.bindings, func(binding Binding, _ int) Binding {
		return Binding{
			Aliases: append(alias.Group(nil), binding.Aliases...),
			Values:  append([]string{}, binding.Values...),
		}
	})
}

// Groups returns the alias group of each binding, in binding order.
func (s *Set) Groups() []alias.Group {
	return lo.Map(s.bindings, func(binding Binding, _ int) alias.Group {
		return append(alias.Group(nil), binding.Aliases...)
	})
}

// Has reports whether the option known by name was given.
func (s *Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// ValuesOf returns the values given for the option known by name.
// It returns nil if the option was not given.
func (s *Set) ValuesOf(name string) []string {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return append([]string{}, s.bindings[i].Values...)
}

// NonOptions returns positional arguments and unrecognized options in order.
func (s *Set) NonOptions() []string {
	return append([]string{}, s.nonOptions...)
}
