package property

import "github.com/samber/lo"

// Environment resolves properties from an ordered list of sources.
// Earlier sources take precedence.
type Environment struct {
	sources []Source
}

// NewEnvironment returns an environment searching sources in order.
func NewEnvironment(sources ...Source) *Environment {
	return &Environment{sources: lo.Compact(sources)}
}

// Property returns the value from the first source defining name.
func (e *Environment) Property(name string) (string, bool) {
	for _, source := range e.sources {
		if value, ok := source.Property(name); ok {
			return value, true
		}
	}
	return "", false
}

// PropertyOr returns the value of name, or fallback when no source defines it.
func (e *Environment) PropertyOr(name, fallback string) string {
	if value, ok := e.Property(name); ok {
		return value
	}
	return fallback
}

// Source returns the source called name.
func (e *Environment) Source(name string) (Source, bool) {
	return lo.Find(e.sources, func(source Source) bool {
		return source.Name() == name
	})
}

// Sources returns the sources in precedence order.
func (e *Environment) Sources() []Source {
	return append([]Source(nil), e.sources...)
}
