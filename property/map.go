package property

import (
	"maps"
	"slices"
)

// Map is a static Source backed by a map.
type Map struct {
	name   string
	values map[string]string
}

// NewMap returns a source holding a copy of values.
func NewMap(name string, values map[string]string) *Map {
	return &Map{name: name, values: maps.Clone(values)}
}

func (m *Map) Name() string {
	return m.name
}

func (m *Map) Property(name string) (string, bool) {
	value, ok := m.values[name]
	return value, ok
}

// PropertyNames returns the keys in sorted order.
func (m *Map) PropertyNames() []string {
	return slices.Sorted(maps.Keys(m.values))
}
